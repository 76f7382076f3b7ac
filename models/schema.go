package models

// Field names shared by the content types.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldContent     = "content"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldIcon        = "icon"
	FieldName        = "name"
	FieldRole        = "role"
	FieldImage       = "image"
	FieldPrice       = "price"
	FieldPeriod      = "period"
	FieldFeatures    = "features"
	FieldPopular     = "popular"
	FieldEmail       = "email"
	FieldSubject     = "subject"
	FieldRead        = "read"
	FieldCreatedAt   = "createdAt"
)

// Defaults applied to empty inputs when building a record.
const (
	DefaultProjectStatus     = "En cours"
	DefaultMarketplacePeriod = "/mois"
)

// FieldType selects the input widget and the JSON type of a field.
type FieldType int

const (
	FieldTypeText FieldType = iota
	FieldTypeMultiline
	FieldTypeIcon
	FieldTypeBool
)

// Field describes one editable attribute of a content type.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Default  string
}

var resourceSchemas = map[ResourceKind][]Field{
	Articles: {
		{Name: FieldTitle, Type: FieldTypeText, Required: true},
		{Name: FieldCategory, Type: FieldTypeText, Required: true},
		{Name: FieldContent, Type: FieldTypeMultiline, Required: true},
	},
	Projects: {
		{Name: FieldTitle, Type: FieldTypeText, Required: true},
		{Name: FieldDescription, Type: FieldTypeMultiline, Required: true},
		{Name: FieldStatus, Type: FieldTypeText, Required: true, Default: DefaultProjectStatus},
	},
	Services: {
		{Name: FieldIcon, Type: FieldTypeIcon, Required: true},
		{Name: FieldTitle, Type: FieldTypeText, Required: true},
		{Name: FieldDescription, Type: FieldTypeMultiline, Required: true},
	},
	Technologies: {
		{Name: FieldName, Type: FieldTypeText, Required: true},
		{Name: FieldIcon, Type: FieldTypeIcon, Required: true},
	},
	Testimonials: {
		{Name: FieldName, Type: FieldTypeText, Required: true},
		{Name: FieldRole, Type: FieldTypeText, Required: true},
		{Name: FieldContent, Type: FieldTypeMultiline, Required: true},
		{Name: FieldImage, Type: FieldTypeText},
	},
	MarketplaceItems: {
		{Name: FieldName, Type: FieldTypeText, Required: true},
		{Name: FieldDescription, Type: FieldTypeMultiline, Required: true},
		{Name: FieldIcon, Type: FieldTypeIcon, Required: true},
		{Name: FieldPrice, Type: FieldTypeText, Required: true},
		{Name: FieldPeriod, Type: FieldTypeText, Default: DefaultMarketplacePeriod},
		{Name: FieldCategory, Type: FieldTypeText, Required: true},
		{Name: FieldFeatures, Type: FieldTypeMultiline, Required: true},
		{Name: FieldPopular, Type: FieldTypeBool},
	},
	Messages: {
		{Name: FieldName, Type: FieldTypeText},
		{Name: FieldEmail, Type: FieldTypeText},
		{Name: FieldSubject, Type: FieldTypeText},
		{Name: FieldContent, Type: FieldTypeMultiline},
		{Name: FieldRead, Type: FieldTypeBool},
	},
}
