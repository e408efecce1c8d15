// Package project models the ordered forest of projects a user can record
// time against, and its tab-indented file format.
package project

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
)

// Node is a project or sub-project with an optional description.
type Node struct {
	Name        string
	Description string
	Children    []*Node
}

// Forest is the ordered set of top-level projects.
type Forest struct {
	Roots []*Node
}

// Load reads a hierarchy file. One project per line; the number of leading
// tabs gives the depth, attaching the node to the nearest preceding line one
// level up. '#' starts a comment, and a "{description}" suffix after the
// name is kept as the node description.
func Load(path string) (*Forest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening projects file: %w", err)
	}
	defer f.Close()

	forest := &Forest{}
	// chain[d] is the most recent node seen at depth d.
	var chain []*Node
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if hash := strings.IndexByte(line, '#'); hash != -1 {
			line = line[:hash]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		depth := 0
		for depth < len(line) && line[depth] == '\t' {
			depth++
		}
		node := &Node{
			Name:        extractName(line[depth:]),
			Description: extractDescription(line[depth:]),
		}
		chain = chain[:min(depth, len(chain))]
		if depth == 0 || len(chain) == 0 {
			forest.Roots = append(forest.Roots, node)
			chain = chain[:0]
		} else {
			parent := chain[len(chain)-1]
			parent.Children = append(parent.Children, node)
		}
		chain = append(chain, node)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading projects file: %w", err)
	}
	return forest, nil
}

// Save writes the forest back in the same tab-indented syntax, with a short
// syntax reminder at the top. Used after the user edits the tree.
func (f *Forest) Save(path string) error {
	var sb strings.Builder
	sb.WriteString("# Syntax:\n# main_project[{description}]\n")
	sb.WriteString("# \tsub_project[{description}]\n# \t\tsub_sub_project[{description}]\n\n")
	for _, root := range f.Roots {
		writeNode(&sb, root, 0)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing projects file: %w", err)
	}
	return nil
}

func writeNode(sb *strings.Builder, n *Node, depth int) {
	sb.WriteString(strings.Repeat("\t", depth))
	sb.WriteString(n.Name)
	if n.Description != "" {
		sb.WriteString("{" + n.Description + "}")
	}
	sb.WriteByte('\n')
	for _, child := range n.Children {
		writeNode(sb, child, depth+1)
	}
}

// TopLevel returns the names of the top-level projects in order.
func (f *Forest) TopLevel() []string {
	names := make([]string, len(f.Roots))
	for i, root := range f.Roots {
		names[i] = root.Name
	}
	return names
}

// Row is one entry of a depth-first flattening, used by tree presentations.
type Row struct {
	Path        domain.ProjectPath
	Depth       int
	Description string
}

// Flatten returns the forest in depth-first order with full paths.
func (f *Forest) Flatten() []Row {
	var rows []Row
	for _, root := range f.Roots {
		flatten(&rows, root, nil, 0)
	}
	return rows
}

func flatten(rows *[]Row, n *Node, prefix domain.ProjectPath, depth int) {
	path := append(prefix.Clone(), n.Name)
	*rows = append(*rows, Row{Path: path, Depth: depth, Description: n.Description})
	for _, child := range n.Children {
		flatten(rows, child, path, depth+1)
	}
}

// Find returns the node addressed by the path, or nil.
func (f *Forest) Find(path domain.ProjectPath) *Node {
	nodes := f.Roots
	var current *Node
	for _, name := range path {
		current = nil
		for _, n := range nodes {
			if n.Name == name {
				current = n
				break
			}
		}
		if current == nil {
			return nil
		}
		nodes = current.Children
	}
	return current
}

// AddChild appends a new node under the parent path (or as a new root for an
// empty parent). It returns an error if the parent does not exist.
func (f *Forest) AddChild(parent domain.ProjectPath, name, description string) error {
	node := &Node{Name: name, Description: description}
	if len(parent) == 0 {
		f.Roots = append(f.Roots, node)
		return nil
	}
	p := f.Find(parent)
	if p == nil {
		return fmt.Errorf("no such project: %s", parent)
	}
	p.Children = append(p.Children, node)
	return nil
}

// Remove deletes the node addressed by the path, including its subtree.
func (f *Forest) Remove(path domain.ProjectPath) error {
	if len(path) == 0 {
		return fmt.Errorf("empty project path")
	}
	siblings := &f.Roots
	if len(path) > 1 {
		parent := f.Find(path[:len(path)-1])
		if parent == nil {
			return fmt.Errorf("no such project: %s", path)
		}
		siblings = &parent.Children
	}
	name := path[len(path)-1]
	for i, n := range *siblings {
		if n.Name == name {
			*siblings = append((*siblings)[:i], (*siblings)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no such project: %s", path)
}

func extractName(s string) string {
	if left := strings.IndexByte(s, '{'); left != -1 {
		s = s[:left]
	}
	return strings.TrimSpace(s)
}

func extractDescription(s string) string {
	left := strings.IndexByte(s, '{')
	right := strings.LastIndexByte(s, '}')
	if left == -1 || right == -1 || right < left {
		return ""
	}
	return strings.TrimSpace(s[left+1 : right])
}
