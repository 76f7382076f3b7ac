// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnknownResourceKind is returned by [ParseResourceKind] for names that do
// not map to any administrable content type.
var ErrUnknownResourceKind = errors.New("unknown resource kind")

// ResourceKind enumerates the content types administrable through the
// /admin/{resource} endpoints. The value is the path segment used on the wire.
type ResourceKind string

const (
	Articles         ResourceKind = "articles"
	Projects         ResourceKind = "projects"
	Services         ResourceKind = "services"
	Technologies     ResourceKind = "technologies"
	Testimonials     ResourceKind = "testimonials"
	MarketplaceItems ResourceKind = "marketplace-items"
	Messages         ResourceKind = "messages"
)

var allResourceKinds = []ResourceKind{
	Articles,
	Projects,
	Services,
	Technologies,
	Testimonials,
	MarketplaceItems,
	Messages,
}

// AllResourceKinds returns every kind in menu order.
func AllResourceKinds() []ResourceKind {
	out := make([]ResourceKind, len(allResourceKinds))
	copy(out, allResourceKinds)
	return out
}

var resourceKindAliases = map[string]ResourceKind{
	"article":          Articles,
	"project":          Projects,
	"service":          Services,
	"technology":       Technologies,
	"tech":             Technologies,
	"testimonial":      Testimonials,
	"marketplace":      MarketplaceItems,
	"marketplace-item": MarketplaceItems,
	"marketplace_item": MarketplaceItems,
	"marketplaceitems": MarketplaceItems,
	"message":          Messages,
}

// ParseResourceKind maps a user supplied name (plural, singular or a known
// alias, any case) onto a [ResourceKind].
func ParseResourceKind(s string) (ResourceKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range allResourceKinds {
		if string(k) == name {
			return k, nil
		}
	}
	if k, ok := resourceKindAliases[name]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResourceKind, s)
}

// Valid reports whether k is one of the known kinds.
func (k ResourceKind) Valid() bool {
	for _, known := range allResourceKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Path returns the collection endpoint, e.g. "/admin/articles".
func (k ResourceKind) Path() string {
	return "/admin/" + string(k)
}

// ItemPath returns the endpoint of a single record, e.g. "/admin/articles/7".
func (k ResourceKind) ItemPath(id ID) string {
	return k.Path() + "/" + url.PathEscape(id.String())
}

// Creatable reports whether the admin may create records of this kind.
// Messages arrive through the public contact form only.
func (k ResourceKind) Creatable() bool {
	return k != Messages
}

// TitleField names the field shown as the headline of a record in lists.
func (k ResourceKind) TitleField() string {
	switch k {
	case Technologies, Testimonials, MarketplaceItems:
		return FieldName
	case Messages:
		return FieldSubject
	default:
		return FieldTitle
	}
}

// Fields returns the editable schema of the kind in form order.
func (k ResourceKind) Fields() []Field {
	return resourceSchemas[k]
}
