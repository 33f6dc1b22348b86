// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"io"

	"github.com/goccy/go-json"
)

// jsNode mirrors Node with the field names
// expected by presentation-layer consumers.
type jsNode struct {
	ID         int               `json:"id"`
	Name       string            `json:"name,omitempty"`
	Length     *float64          `json:"branch_length,omitempty"`
	Support    *float64          `json:"support,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Children   []*jsNode         `json:"children,omitempty"`
}

func toJS(n *Node) *jsNode {
	j := &jsNode{
		ID:         n.ID,
		Name:       n.Name,
		Length:     n.Length,
		Support:    n.Support,
		Attributes: n.Attributes,
	}
	for _, c := range n.Children {
		j.Children = append(j.Children, toJS(c))
	}
	return j
}

func fromJS(j *jsNode) *Node {
	n := &Node{
		ID:         j.ID,
		Name:       j.Name,
		Length:     j.Length,
		Support:    j.Support,
		Attributes: j.Attributes,
	}
	for _, c := range j.Children {
		n.Children = append(n.Children, fromJS(c))
	}
	return n
}

// MarshalJSON implements the json.Marshaler interface.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJS(n))
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (n *Node) UnmarshalJSON(b []byte) error {
	j := &jsNode{}
	if err := json.Unmarshal(b, j); err != nil {
		return err
	}
	*n = *fromJS(j)
	return nil
}

// WriteJSON writes the tree as JSON.
func WriteJSON(w io.Writer, n *Node) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(n)
}

// ReadJSON reads a tree from a JSON stream.
func ReadJSON(r io.Reader) (*Node, error) {
	n := &Node{}
	if err := json.NewDecoder(r).Decode(n); err != nil {
		return nil, err
	}
	return n, nil
}
