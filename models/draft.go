package models

// Draft is a record being edited in a form or on the command line: raw text
// values keyed by field name. A zero ID means the record is new.
type Draft struct {
	Kind   ResourceKind
	ID     ID
	Values map[string]string
}

// NewDraft starts an empty draft of kind.
func NewDraft(kind ResourceKind) Draft {
	return Draft{Kind: kind, Values: make(map[string]string, len(kind.Fields()))}
}

// EditDraft starts a draft holding the editable fields of e.
func EditDraft(kind ResourceKind, e Entity) Draft {
	return Draft{Kind: kind, ID: e.ID(), Values: FormValues(kind, e)}
}

func (d Draft) IsNew() bool { return d.ID.IsZero() }

// Entity builds the request body, see [BuildEntity].
func (d Draft) Entity() Entity {
	return BuildEntity(d.Kind, d.Values)
}
