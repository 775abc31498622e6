package api

import "github.com/gogazub/edf-demo/internal/core"

type PressRequest struct {
	Button int `json:"button"`
	Level  int `json:"level"`
}

type PressResponse struct {
	Button int    `json:"button"`
	Level  string `json:"level"`
}

type TaskStats struct {
	Name     string        `json:"name"`
	Priority int           `json:"priority"`
	Period   uint32        `json:"period"`
	Counters core.Counters `json:"counters"`
}

type StatsResponse struct {
	BootID     string      `json:"boot_id"`
	Mode       string      `json:"mode"`
	QueueDepth int         `json:"queue_depth"`
	QueueCap   int         `json:"queue_cap"`
	Tasks      []TaskStats `json:"tasks"`
}
