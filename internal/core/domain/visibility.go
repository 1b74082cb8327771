package domain

// Visibility is the three-tier privacy level attached to every entry.
type Visibility string

const (
	VisibilityPrivate        Visibility = "private"
	VisibilityContacts       Visibility = "contacts"
	VisibilitySharedContacts Visibility = "shared_contacts" // journal spelling of contacts
	VisibilityPublic         Visibility = "public"
)

// Relationship describes how a viewer relates to an entry's owner.
type Relationship string

const (
	RelationshipSelf     Relationship = "self"
	RelationshipContact  Relationship = "contact"
	RelationshipStranger Relationship = "stranger"
)

// Known reports whether v is one of the recognised levels.
func (v Visibility) Known() bool {
	switch v {
	case VisibilityPrivate, VisibilityContacts, VisibilitySharedContacts, VisibilityPublic:
		return true
	}
	return false
}

// Tier folds the journal spelling onto the shared tier so the two enums compare equal.
func (v Visibility) Tier() Visibility {
	if v == VisibilitySharedContacts {
		return VisibilityContacts
	}
	return v
}

// NormalizeVisibility maps client spellings onto the canonical levels.
// "all" is the older mood-log spelling of public. Empty input yields def.
func NormalizeVisibility(raw string, def Visibility) Visibility {
	switch raw {
	case "":
		return def
	case "all":
		return VisibilityPublic
	}
	return Visibility(raw)
}

// IsVisible reports whether viewerID may read e given its relationship to the owner.
// Unknown visibility values are treated as private.
func IsVisible(e Entry, viewerID string, rel Relationship) bool {
	if rel == RelationshipSelf || (viewerID != "" && viewerID == e.OwnerID) {
		return true
	}
	switch e.Visibility {
	case VisibilityPublic:
		return true
	case VisibilityContacts, VisibilitySharedContacts:
		return rel == RelationshipContact
	default:
		return false
	}
}

// FilterVisible keeps the entries viewerID may read, preserving order.
func FilterVisible(entries []Entry, viewerID string, rel Relationship) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if IsVisible(e, viewerID, rel) {
			out = append(out, e)
		}
	}
	return out
}
