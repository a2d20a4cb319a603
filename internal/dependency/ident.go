package dependency

import "regexp"

// Identifiers have the form "Group::Name[Params]" where the group prefix and
// the params suffix are both optional.
var identPattern = regexp.MustCompile(`^((?P<group>\w+)::)?(?P<name>\w+)(\[(?P<params>.*)\])?$`)

// Ident is a test identifier split into its components.
type Ident struct {
	Group  string
	Name   string
	Params string
}

// SplitIdent parses an identifier into its group, name and params components.
// Identifiers that do not match the expected form are treated as opaque: the
// whole string becomes the name.
func SplitIdent(id string) Ident {
	m := identPattern.FindStringSubmatch(id)
	if m == nil {
		return Ident{Name: id}
	}
	ident := Ident{}
	for i, key := range identPattern.SubexpNames() {
		switch key {
		case "group":
			ident.Group = m[i]
		case "name":
			ident.Name = m[i]
		case "params":
			ident.Params = m[i]
		}
	}
	return ident
}

// Qualified returns the group-qualified name without params.
func (id Ident) Qualified() string {
	if id.Group != "" {
		return id.Group + "::" + id.Name
	}
	return id.Name
}
