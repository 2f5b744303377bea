package mm1

import (
	"fmt"
	"strings"
)

// Customer is one unit of work passing through the queue.
type Customer struct {
	ID          int
	ArrivalTime float64
}

// WaitingTime returns how long the customer has been in the system at now.
func (c *Customer) WaitingTime(now float64) float64 {
	return now - c.ArrivalTime
}

func (c *Customer) String() string {
	return fmt.Sprintf("C%d@%g", c.ID, c.ArrivalTime)
}

// WaitQueue is the FIFO line of customers waiting for the server.
type WaitQueue struct {
	queue []*Customer
}

// Enqueue adds a customer to the back of the queue.
func (wq *WaitQueue) Enqueue(c *Customer) {
	if c == nil {
		panic("Enqueue: customer must not be nil")
	}
	wq.queue = append(wq.queue, c)
}

// Dequeue removes and returns the customer at the front, or nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Customer {
	if len(wq.queue) == 0 {
		return nil
	}
	c := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return c
}

// Peek returns the customer at the front without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Customer {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Len returns the number of waiting customers.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range wq.queue {
		sb.WriteString(c.String())
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
