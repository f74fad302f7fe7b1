package perfect

// less compares two keywords and reports whether a sorts
// before b under some criterion (occurrence-descending or hash-ascending).
type less func(a, b *KeywordExt) bool

// mergesortList sorts the singly linked list starting at head using the
// standard top-down, slow/fast-pointer merge sort (spec.md §4.8). Stability
// is not required and not provided. Used both for the optional Cichelli
// reorder (by decreasing Occurrence) and for the final sort by increasing
// HashValue.
func mergesortList(a *arena, head *node, cmp less) *node {
	if head == nil || head.next == nil {
		return head
	}

	left, right := splitList(head)
	left = mergesortList(a, left, cmp)
	right = mergesortList(a, right, cmp)
	return mergeLists(a, left, right, cmp)
}

// splitList divides the list in two roughly equal halves using the
// slow/fast pointer technique and returns the head of each half.
func splitList(head *node) (left, right *node) {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	right = slow.next
	slow.next = nil
	return head, right
}

// mergeLists merges two already-sorted lists into one sorted list.
func mergeLists(a *arena, l1, l2 *node, cmp less) *node {
	var head, tail *node
	for l1 != nil && l2 != nil {
		var next *node
		if cmp(a.get(l1.idx), a.get(l2.idx)) {
			next, l1 = l1, l1.next
		} else {
			next, l2 = l2, l2.next
		}
		if head == nil {
			head = next
		} else {
			tail.next = next
		}
		tail = next
	}
	rest := l1
	if rest == nil {
		rest = l2
	}
	if head == nil {
		return rest
	}
	tail.next = rest
	return head
}
