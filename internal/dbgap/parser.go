package dbgap

import (
	"encoding/xml"
	"fmt"

	"github.com/helxplatform/ddindex/pkg/ddindex"
)

// xmlNode is the raw wire shape of one element. The document is decoded
// into this generic tree first and lifted into the Study model with
// explicit checks, so that structural defects produce named errors
// instead of silently unmarshalling into zero values.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []xmlNode  `xml:",any"`
	Text     string     `xml:",chardata"`
}

// attr returns the value of the named attribute and whether it was present.
func (n *xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// attrOr returns the named attribute or fallback when absent.
func (n *xmlNode) attrOr(name, fallback string) string {
	if v, ok := n.attr(name); ok {
		return v
	}
	return fallback
}

// childText extracts the text of the single child element with the given
// tag. Absent children yield the empty string; two or more same-named
// children indicate a malformed document and are an error. Text content
// is preserved exactly as written, including whitespace.
func (n *xmlNode) childText(tag string) (string, error) {
	var text string
	count := 0
	for i := range n.Children {
		if n.Children[i].XMLName.Local == tag {
			count++
			text = n.Children[i].Text
		}
	}
	if count > 1 {
		return "", fmt.Errorf("found %d <%s> children under one <variable>, expected at most one", count, tag)
	}
	return text, nil
}

// Parse parses the content of one dbGaP XML file into a Study. The
// repository and path are recorded on the Study and used in error
// messages; the parse itself has no cross-file knowledge.
func Parse(content []byte, repository, path string) (*ddindex.Study, error) {
	var root xmlNode
	if err := xml.Unmarshal(content, &root); err != nil {
		return nil, wrapXMLError(err, repository, path)
	}

	// The study identifier is the whole point of indexing; a file
	// without one cannot be indexed and must not be silently skipped.
	studyID, ok := root.attr("study_id")
	if !ok {
		return nil, &ParseError{
			Repository: repository,
			Path:       path,
			Message:    fmt.Sprintf("root element <%s> has no study_id attribute", root.XMLName.Local),
		}
	}

	study := &ddindex.Study{
		Repository:       repository,
		Filepath:         path,
		StudyID:          studyID,
		StudyName:        root.attrOr("study_name", ""),
		StudyDescription: root.attrOr("study_description", ""),
		ApplID:           root.attrOr("appl_id", ""),
		StudyVersion:     "",
	}

	type grouped struct {
		key       string
		variables []ddindex.Variable
	}
	var groups []grouped
	groupIndex := make(map[string]int)

	for i := range root.Children {
		child := &root.Children[i]
		if child.XMLName.Local != "variable" {
			return nil, &ParseError{
				Repository: repository,
				Path:       path,
				Message:    fmt.Sprintf("found unknown tag <%s> under root element <%s>", child.XMLName.Local, root.XMLName.Local),
			}
		}

		variable, err := parseVariable(child, repository, path)
		if err != nil {
			return nil, err
		}

		key := sectionKey(child)
		idx, ok := groupIndex[key]
		if !ok {
			idx = len(groups)
			groupIndex[key] = idx
			groups = append(groups, grouped{key: key})
		}
		groups[idx].variables = append(groups[idx].variables, variable)
	}

	for _, g := range groups {
		study.Sections = append(study.Sections, ddindex.Section{
			Name:      g.key,
			Variables: g.variables,
		})
	}

	return study, nil
}

// parseVariable lifts one <variable> element. The producing generators
// are inconsistent about which attributes they populate, so id and dd_id
// default to empty strings rather than being required.
func parseVariable(node *xmlNode, repository, path string) (ddindex.Variable, error) {
	variable := ddindex.Variable{
		ID:           node.attrOr("id", ""),
		DictionaryID: dictionaryID(node),
	}

	for _, tag := range []struct {
		name string
		dest *string
	}{
		{"name", &variable.Name},
		{"title", &variable.Title},
		{"description", &variable.Description},
		{"type", &variable.Type},
	} {
		text, err := node.childText(tag.name)
		if err != nil {
			return ddindex.Variable{}, &ParseError{
				Repository: repository,
				Path:       path,
				Message:    err.Error(),
			}
		}
		*tag.dest = text
	}

	for i := range node.Children {
		child := &node.Children[i]
		if child.XMLName.Local != "value" {
			continue
		}
		code, ok := child.attr("code")
		if !ok {
			// Silently dropping an enumeration would corrupt downstream
			// semantics; surface the upstream defect instead.
			return ddindex.Variable{}, &ParseError{
				Repository: repository,
				Path:       path,
				Message:    fmt.Sprintf("<value> element of variable %q has no code attribute", variable.ID),
			}
		}
		variable.Values = append(variable.Values, ddindex.Value{
			Code:  code,
			Label: child.Text,
		})
	}

	return variable, nil
}

// dictionaryID reads the data dictionary identifier, accepting both the
// dd_id and dictionary_id spellings the generators emit.
func dictionaryID(node *xmlNode) string {
	if v, ok := node.attr("dd_id"); ok {
		return v
	}
	return node.attrOr("dictionary_id", "")
}

// sectionKey picks the grouping key for a variable: its section
// attribute, then module, then its data dictionary id, then the sentinel
// section for variables carrying none of those. Empty attribute values
// count as absent.
func sectionKey(node *xmlNode) string {
	if v, _ := node.attr("section"); v != "" {
		return v
	}
	if v, _ := node.attr("module"); v != "" {
		return v
	}
	if v := dictionaryID(node); v != "" {
		return v
	}
	return ddindex.NoneSection
}
