package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/footprint"
	md "github.com/nao1215/markdown"
)

// TableMarkdown renders an intensity table, one row per sector.
func TableMarkdown(title string, t *footprint.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	doc.PlainText(fmt.Sprintf("%d sectors, %d columns.", t.Len(), len(t.Columns())))

	header := append([]string{"Country", "Sector"}, t.Columns()...)
	rows := make([][]string, 0, t.Len())
	for _, r := range t.Rows() {
		cells := []string{r.Key.Country, r.Key.Sector}
		for _, v := range r.Values {
			cells = append(cells, number(v))
		}
		rows = append(rows, cells)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})

	return doc.String()
}

// NetworkMarkdown renders the edges of a co-exposure network, and the strength
// of each node.
func NetworkMarkdown(n *footprint.Network) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Climate and Nature Co-exposure Network")
	doc.PlainText(fmt.Sprintf("%d nodes, %d edges.", len(n.Nodes), len(n.Edges)))

	doc.H2("Nodes")
	nodes := make([][]string, 0, len(n.Nodes))
	for _, node := range n.Nodes {
		nodes = append(nodes, []string{node, fmt.Sprintf("%.4f", n.Strength(node))})
	}
	doc.Table(md.TableSet{Header: []string{"Node", "Strength"}, Rows: nodes})

	doc.H2("Edges")
	edges := make([][]string, 0, len(n.Edges))
	for _, e := range n.Edges {
		edges = append(edges, []string{e.A, e.B, fmt.Sprintf("%.4f", e.Weight)})
	}
	doc.Table(md.TableSet{Header: []string{"From", "To", "Weight"}, Rows: edges})

	return doc.String()
}
