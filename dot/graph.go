// Package dot renders pathway models as Graphviz DOT using emicklei/dot.
package dot

import (
	"strconv"
	"strings"

	"github.com/Unsaif/pathrecon"
	"github.com/cespare/xxhash/v2"
	"github.com/emicklei/dot"
)

// excludedMetabolites are common cofactors and currency metabolites that are
// left out of the graph to prevent hairballs.
var excludedMetabolites = map[string]struct{}{
	"h2o": {}, "water": {}, "h+": {}, "proton": {}, "o2": {}, "oxygen": {},
	"co2": {}, "atp": {}, "adp": {}, "amp": {}, "nad+": {}, "nadh": {},
	"nadp+": {}, "nadph": {}, "pi": {}, "phosphate": {}, "ppi": {},
	"coa": {}, "coenzyme a": {},
}

// Generate renders the pathway as a bipartite directed graph: metabolite box
// nodes feeding reaction ellipse nodes feeding product box nodes. Reactions
// missing substrates or products are skipped.
func Generate(p *pathrecon.Pathway) string {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")
	g.Attr("nodesep", "0.6")
	g.Attr("ranksep", "0.8")
	g.Attr("splines", "ortho")
	g.Attr("overlap", "false")

	if p == nil {
		return g.String()
	}

	for i := range p.Reactions {
		r := &p.Reactions[i]
		if len(r.Substrates) == 0 || len(r.Products) == 0 {
			continue
		}

		enzyme := strings.Join(r.Enzyme, ", ")
		if enzyme == "" {
			enzyme = "unknown"
		}
		enzyme = strings.ReplaceAll(enzyme, " activity", "")

		rxn := g.Node("rxn_" + strconv.Itoa(i)).
			Attr("shape", "ellipse").
			Attr("style", "filled").
			Attr("fillcolor", "#fff9c4").
			Attr("label", enzyme).
			Attr("fontsize", "8")

		for _, s := range r.Substrates {
			if node, ok := metaboliteNode(g, s); ok {
				g.Edge(node, rxn)
			}
		}
		for _, prod := range r.Products {
			if node, ok := metaboliteNode(g, prod); ok {
				g.Edge(rxn, node)
			}
		}
	}

	return g.String()
}

// metaboliteNode returns the graph node for a metabolite, creating it on
// first use. Node identity is keyed on the cleaned name so synonymous
// mentions collapse into one node. Excluded cofactors return ok=false.
func metaboliteNode(g *dot.Graph, name string) (dot.Node, bool) {
	clean := pathrecon.CleanMetaboliteName(name)
	if _, excluded := excludedMetabolites[strings.ToLower(clean)]; excluded {
		return dot.Node{}, false
	}
	id := "met_" + strconv.FormatUint(xxhash.Sum64String(clean), 16)
	node := g.Node(id).
		Attr("shape", "box").
		Attr("style", "filled").
		Attr("fillcolor", "#e1f5fe").
		Attr("label", clean)
	return node, true
}
