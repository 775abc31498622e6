package kernel

import "container/heap"

// admissionHeap упорядочивает задачи для запуска: сначала периодические,
// от короткого периода (ближайшего дедлайна) к длинному, затем остальные по
// убыванию приоритета. seq даёт устойчивый порядок при равенстве.
type admissionHeap []*task

func (h admissionHeap) Len() int { return len(h) }
func (h admissionHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	ap, bp := a.Period > 0, b.Period > 0
	switch {
	case ap && !bp:
		return true
	case !ap && bp:
		return false
	case ap && bp && a.Period != b.Period:
		return a.Period < b.Period
	case a.Priority != b.Priority:
		return a.Priority > b.Priority
	}
	return a.seq < b.seq
}
func (h admissionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *admissionHeap) Push(x any)   { *h = append(*h, x.(*task)) }
func (h *admissionHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// launchOrder прогоняет зарегистрированные задачи через кучу.
func launchOrder(tasks []*task) []*task {
	h := make(admissionHeap, len(tasks))
	copy(h, tasks)
	heap.Init(&h)
	out := make([]*task, 0, len(tasks))
	for h.Len() > 0 {
		out = append(out, heap.Pop(&h).(*task))
	}
	return out
}
