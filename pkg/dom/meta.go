package dom

// SetMeta associates value with n without touching the node itself.
func (d *Document) SetMeta(n *Node, value any) {
	if n == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.meta[n] = value
}

// Meta returns the value stored for n by SetMeta.
func (d *Document) Meta(n *Node) (any, bool) {
	if n == nil {
		return nil, false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	value, ok := d.meta[n]
	return value, ok
}

// Forget drops the metadata and listeners held for n.
func (d *Document) Forget(n *Node) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.meta, n)
	delete(d.listeners, n)
}

// ForgetTree calls Forget for n and every node below it.
func (d *Document) ForgetTree(n *Node) {
	if n == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	var walk func(*Node)
	walk = func(node *Node) {
		delete(d.meta, node)
		delete(d.listeners, node)
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
}
