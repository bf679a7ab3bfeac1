package view

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"caseview/internal/model"
)

// DefaultLocale groups thousands with ".".
const DefaultLocale = "it"

// Node is one entry of the category tree.
type Node struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Children []*Node `json:"children,omitempty"`
}

// NewPrinter returns a printer for locale, falling back to DefaultLocale
// when the tag does not parse.
func NewPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return message.NewPrinter(tag)
}

// Tree summarizes reg. Only non-empty nodes are included.
func Tree(reg *model.Registry, p *message.Printer) *Node {
	if p == nil {
		p = NewPrinter(DefaultLocale)
	}
	root := &Node{ID: RootID, Label: "Cyber items"}
	if reg == nil {
		return root
	}

	for _, e := range topLevel {
		var n *Node
		switch e.id {
		case ChatsID:
			n = chatNode(reg, p)
		case FilesID:
			n = filesNode(reg, p)
		default:
			if count := reg.Len(e.category); count > 0 {
				n = &Node{ID: e.id, Label: p.Sprintf("%s (%d)", e.name, count)}
			}
		}
		if n != nil {
			root.Children = append(root.Children, n)
		}
	}
	return root
}

func chatNode(reg *model.Registry, p *message.Printer) *Node {
	threads := reg.Threads.All()
	if len(threads) == 0 {
		return nil
	}
	n := &Node{ID: ChatsID}
	total := 0
	for i, t := range threads {
		size := threadLength(t)
		total += size
		n.Children = append(n.Children, &Node{
			ID:    t.ID,
			Label: p.Sprintf("chat N. %s (%d)", strconv.Itoa(i+1), size),
		})
	}
	n.Label = p.Sprintf("Chats (%d/%d)", len(threads), total)
	return n
}

// threadLength is the declared thread size, or the number of listed
// messages when the size is not a number.
func threadLength(t *model.Thread) int {
	if n, err := strconv.Atoi(t.Size); err == nil {
		return n
	}
	return len(t.Messages)
}

func filesNode(reg *model.Registry, p *message.Printer) *Node {
	total := reg.FileCount()
	if total == 0 {
		return nil
	}
	n := &Node{ID: FilesID, Label: p.Sprintf("Files (%d)", total)}
	for _, e := range fileNodes {
		if count := reg.Len(e.category); count > 0 {
			n.Children = append(n.Children, &Node{ID: e.id, Label: p.Sprintf("%s (%d)", e.name, count)})
		}
	}
	return n
}

// Walk calls fn for n and each descendant, depth first.
func (n *Node) Walk(fn func(n *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Find returns the node with id, or nil.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(c *Node, _ int) {
		if found == nil && c.ID == id {
			found = c
		}
	})
	return found
}
