package ddindex

import "strings"

// Value is one enumerated code/label pair attached to a categorical variable.
// Values are created during parsing of a <value> element and never mutated.
type Value struct {
	Code  string
	Label string
}

// Variable is one <variable> element from a dbGaP XML data dictionary.
// ID is the per-file variable identifier and is not guaranteed globally
// unique; DictionaryID links the variable to the data dictionary (table)
// it came from. Missing optional attributes and children are recorded as
// empty strings, never omitted.
type Variable struct {
	DictionaryID string
	ID           string
	Name         string
	Title        string
	Description  string
	Type         string
	Values       []Value
}

// Section groups a file's variables under a single key. The key is taken
// from the variable's section attribute, then its module attribute, then
// its dd_id attribute; variables carrying none of those fall into the
// sentinel section NoneSection. Variable order within a section is the
// first-seen document order.
type Section struct {
	Name      string
	Variables []Variable
}

// Study is one parsed dbGaP XML file. StudyID is the cross-repository
// join key and is not unique: the same study legitimately appears in
// several repositories. The same StudyID appearing at two different file
// paths within one repository is a defect surfaced by the duplicate
// report.
type Study struct {
	Repository       string
	Filepath         string
	StudyID          string
	StudyName        string
	StudyDescription string
	ApplID           string
	StudyVersion     string
	Sections         []Section

	// Checksum is the SHA-256 of the raw file content; ChecksumNormalized
	// is the SHA-256 after whitespace normalization. They let the
	// duplicate report distinguish byte-identical copies from files that
	// differ only in formatting.
	Checksum           string
	ChecksumNormalized string
}

// VariableCount returns the total number of variables across all sections.
func (s *Study) VariableCount() int {
	n := 0
	for _, sec := range s.Sections {
		n += len(sec.Variables)
	}
	return n
}

// RepositoryRef identifies one repository traversal: a repository name
// plus the branch or tag to read from.
type RepositoryRef struct {
	Name string
	Ref  string
}

// ParseRepositoryRef parses a command-line repository reference of the
// form "name" or "name:branch_or_tag". When no branch or tag is given,
// DefaultRef is used.
func ParseRepositoryRef(s string) RepositoryRef {
	if name, ref, ok := strings.Cut(s, ":"); ok {
		return RepositoryRef{Name: name, Ref: ref}
	}
	return RepositoryRef{Name: s, Ref: DefaultRef}
}

// String renders the reference in the same name:ref form accepted by
// ParseRepositoryRef.
func (r RepositoryRef) String() string {
	return r.Name + ":" + r.Ref
}
