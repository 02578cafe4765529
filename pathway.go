package pathrecon

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Pathway is the structured pathway model extracted from source documents.
type Pathway struct {
	Metabolites NameList   `json:"metabolites"`
	Enzymes     NameList   `json:"enzymes"`
	Reactions   []Reaction `json:"reactions"`
}

// Reaction is a single metabolic or transport reaction in a pathway.
type Reaction struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Certainty     string     `json:"certainty"`
	Organ         string     `json:"organ"`
	Organism      string     `json:"organism"`
	PrimarySource string     `json:"primary_source"`
	Substrates    StringList `json:"substrates"`
	Products      StringList `json:"products"`
	Enzyme        StringList `json:"enzyme"`
	Cofactors     StringList `json:"cofactors"`
	Reversible    *bool      `json:"reversible"`
	Regulation    Regulation `json:"regulation"`
	Compartment   string     `json:"compartment"`
	Evidence      StringList `json:"evidence"`
}

// Hypothetical reports whether the reaction is marked as hypothetical rather
// than confirmed.
func (r *Reaction) Hypothetical() bool {
	return strings.EqualFold(r.Certainty, "hypothetical")
}

// Equation renders the reaction as "substrates -> products".
func (r *Reaction) Equation() string {
	return strings.Join(r.Substrates, " + ") + " -> " + strings.Join(r.Products, " + ")
}

// StringList is a list of strings that also accepts a single JSON string.
// Model output is inconsistent about singular vs plural fields (enzyme in
// particular arrives as either shape), so the union is resolved here at the
// JSON boundary and every downstream component sees one uniform shape.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = StringList{s}
		return nil
	}
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return err
	}
	*l = StringList(ss)
	return nil
}

// NameList is a list of names whose elements may arrive as bare strings or
// as objects carrying a "name" or "id" field.
type NameList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *NameList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	names := make([]string, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			names = append(names, s)
			continue
		}
		var obj struct {
			Name string `json:"name"`
			ID   string `json:"id"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return err
		}
		if obj.Name != "" {
			names = append(names, obj.Name)
		} else if obj.ID != "" {
			names = append(names, obj.ID)
		}
	}
	*l = NameList(names)
	return nil
}

// Regulator is a single regulatory agent acting on a reaction.
type Regulator struct {
	Name   string `json:"regulator"`
	Effect string `json:"effect,omitempty"`
}

// UnmarshalJSON accepts either a bare string or a regulator object.
func (r *Regulator) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Name = s
		return nil
	}
	type alias Regulator
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = Regulator(a)
	return nil
}

// Regulation describes regulatory information for a reaction. Model output
// sometimes delivers a free-text string instead of the structured object;
// that form is preserved in Note.
type Regulation struct {
	Inhibitors []Regulator `json:"inhibitors,omitempty"`
	Activators []Regulator `json:"activators,omitempty"`
	Note       string      `json:"note,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *Regulation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		g.Note = s
		return nil
	}
	type alias Regulation
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*g = Regulation(a)
	return nil
}

// String renders regulation as a short display string.
func (g *Regulation) String() string {
	if g.Note != "" {
		return g.Note
	}
	var parts []string
	if len(g.Inhibitors) > 0 {
		parts = append(parts, "Inhibitors: "+joinRegulators(g.Inhibitors))
	}
	if len(g.Activators) > 0 {
		parts = append(parts, "Activators: "+joinRegulators(g.Activators))
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "; ")
}

func joinRegulators(regs []Regulator) string {
	names := make([]string, 0, len(regs))
	for _, r := range regs {
		if r.Effect != "" {
			names = append(names, r.Name+" ("+r.Effect+")")
		} else {
			names = append(names, r.Name)
		}
	}
	return strings.Join(names, ", ")
}

// EvidenceQueries flattens the evidence quotes of every reaction into
// localization queries. Confirmed reactions highlight yellow, hypothetical
// ones orange.
func EvidenceQueries(p *Pathway) []Query {
	if p == nil {
		return nil
	}
	var queries []Query
	for i := range p.Reactions {
		r := &p.Reactions[i]
		color := DefaultHighlightColor
		if r.Hypothetical() {
			color = HypotheticalHighlightColor
		}
		for _, quote := range r.Evidence {
			queries = append(queries, Query{Text: quote, Color: color})
		}
	}
	return queries
}

var (
	locantPrefixRe = regexp.MustCompile(`^\d+[\.,]\d+-`)
	syntheticRe    = regexp.MustCompile(`(?i)\(.*?synthetic.*?\)`)
)

// CleanMetaboliteName strips numeric locant prefixes (e.g. "1,3-") and
// "(synthetic)" parentheticals from chemical names for display and graphing.
func CleanMetaboliteName(name string) string {
	name = locantPrefixRe.ReplaceAllString(name, "")
	name = syntheticRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
