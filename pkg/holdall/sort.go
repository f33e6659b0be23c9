package holdall

// Sort reorders the list in place with a merge sort. cmp returns a
// negative number when a must come before b, zero when they are equal.
// The sort is stable.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	if l.count < 2 {
		return
	}
	l.head = mergeSort(l.head, cmp)
	p := l.head
	for p.next != nil {
		p = p.next
	}
	l.tail = p
}

func mergeSort[T any](head *node[T], cmp func(a, b T) int) *node[T] {
	if head == nil || head.next == nil {
		return head
	}
	front, back := split(head)
	return merge(mergeSort(front, cmp), mergeSort(back, cmp), cmp)
}

// split cuts the list in two halves. With an odd length, the front half
// holds the extra node.
func split[T any](head *node[T]) (front, back *node[T]) {
	slow, fast := head, head.next
	for fast != nil {
		fast = fast.next
		if fast != nil {
			slow = slow.next
			fast = fast.next
		}
	}
	back = slow.next
	slow.next = nil
	return head, back
}

// merge takes the front head on ties, which keeps equal elements in their
// original order.
func merge[T any](a, b *node[T], cmp func(a, b T) int) *node[T] {
	var sentinel node[T]
	tail := &sentinel
	for a != nil && b != nil {
		if cmp(a.value, b.value) <= 0 {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return sentinel.next
}
