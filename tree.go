package ofx

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/golang/glog"
)

// Node is one element of the generic document tree. Names are stored
// lowercased; repeated sibling tags of the same name are retained as
// separate children in document order.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// Find returns the first descendant named name, depth first. Lookup is
// case-insensitive. It returns nil when no such descendant exists.
func (n *Node) Find(name string) *Node {
	name = strings.ToLower(name)
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant named name, depth first, preserving
// document order. Lookup is case-insensitive.
func (n *Node) FindAll(name string) []*Node {
	name = strings.ToLower(name)
	var found []*Node
	for _, child := range n.Children {
		if child.Name == name {
			found = append(found, child)
		}
		found = append(found, child.FindAll(name)...)
	}
	return found
}

// Child returns the first direct child named name, or nil.
func (n *Node) Child(name string) *Node {
	name = strings.ToLower(name)
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// findText returns the trimmed text of the first descendant named name.
// The second return is false when the tag is absent entirely, true when
// present even if empty.
func (n *Node) findText(name string) (string, bool) {
	node := n.Find(name)
	if node == nil {
		return "", false
	}
	return node.Text, true
}

// String renders the subtree in OFX form, leaf elements fully closed.
func (n *Node) String() string {
	var buff bytes.Buffer
	n.write(&buff)
	return buff.String()
}

func (n *Node) write(buff *bytes.Buffer) {
	name := strings.ToUpper(n.Name)
	if len(n.Children) == 0 {
		writeElement(name, n.Text, buff)
		return
	}
	writeStartTag(name, buff)
	for _, child := range n.Children {
		child.write(buff)
	}
	writeEndTag(name, buff)
}

// BuildTree parses markup into a generic tree, rooted at a synthetic
// document node. It accepts both normalized SGML output and native OFX 2.x
// XML: stray closing tags are dropped and elements still open at end of
// input are closed implicitly.
func BuildTree(data []byte) (*Node, error) {
	var (
		root    = &Node{Name: "document"}
		open    = NewStack()
		decoder = xml.NewDecoder(bytes.NewReader(data))
	)
	decoder.Strict = false

	top := func() *Node {
		if node, err := open.Peek(); err == nil {
			return node
		}
		return root
	}

	for {
		token, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, &StructuralError{Reason: err.Error()}
		}
		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{Name: strings.ToLower(t.Name.Local)}
			parent := top()
			parent.Children = append(parent.Children, node)
			open.Push(node)
		case xml.CharData:
			top().Text += string(t)
		case xml.EndElement:
			name := strings.ToLower(t.Name.Local)
			matched := false
			for _, openName := range open.Dump() {
				if openName == name {
					matched = true
					break
				}
			}
			if !matched {
				glog.V(3).Infof("dropping stray closing tag %s", name)
				continue
			}
			for {
				node, err := open.Pop()
				if err != nil || node.Name == name {
					break
				}
			}
		}
	}

	trimText(root)
	return root, nil
}

func trimText(n *Node) {
	n.Text = strings.TrimSpace(n.Text)
	for _, child := range n.Children {
		trimText(child)
	}
}
