package footprint

import (
	"fmt"
	"math"
	"slices"
)

// ScoreSheet holds firm level scores on named columns, for instance climate
// hazards (floods, heat stress) or ecosystem-service dependencies.
type ScoreSheet struct {
	Columns []string
	Scores  map[string][]float64 // firm id -> one score per column
}

// Edge links two risk drivers. Weight is the average, over firms, of the
// product of their scores.
type Edge struct {
	A, B   string
	Weight float64
}

// Network is the climate/nature co-exposure network: nodes are risk drivers
// and an edge is weighted by how much firms are jointly exposed to both.
type Network struct {
	Nodes []string
	Edges []Edge
}

// NewNetwork builds the co-exposure network of two score sheets.
//
// Sheets are joined on firm ids, firms present in only one sheet are ignored,
// as well as firms with a NaN score. Nodes are the climate columns followed by
// the nature columns. Every pair of nodes with a positive average product
// becomes an edge, in node pair order.
func NewNetwork(climate, nature *ScoreSheet) (*Network, error) {
	nodes := append(slices.Clone(climate.Columns), nature.Columns...)
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if seen[n] {
			return nil, fmt.Errorf("node %q: %w", n, ErrDuplicateKey)
		}
		seen[n] = true
	}

	firms := make([]string, 0, len(climate.Scores))
	for firm := range climate.Scores {
		if _, ok := nature.Scores[firm]; ok {
			firms = append(firms, firm)
		}
	}
	slices.Sort(firms)

	rows := make([][]float64, 0, len(firms))
	for _, firm := range firms {
		c, n := climate.Scores[firm], nature.Scores[firm]
		if len(c) != len(climate.Columns) || len(n) != len(nature.Columns) {
			return nil, fmt.Errorf("firm %q scores do not match the sheet columns: %w", firm, ErrShapeMismatch)
		}
		row := append(slices.Clone(c), n...)
		if slices.ContainsFunc(row, math.IsNaN) {
			continue
		}
		rows = append(rows, row)
	}

	net := &Network{Nodes: nodes}
	if len(rows) == 0 {
		return net, nil
	}
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			var sum float64
			for _, row := range rows {
				sum += row[i] * row[j]
			}
			if avg := sum / float64(len(rows)); avg > 0 {
				net.Edges = append(net.Edges, Edge{A: nodes[i], B: nodes[j], Weight: avg})
			}
		}
	}
	return net, nil
}

// Strength returns the sum of the weights of the edges incident to node.
func (n *Network) Strength(node string) float64 {
	var s float64
	for _, e := range n.Edges {
		if e.A == node || e.B == node {
			s += e.Weight
		}
	}
	return s
}
