package notifytext

import (
	"context"
	"strings"
)

// Resolver resolves the locale tag used for a recipient's notification texts.
type Resolver interface {
	Resolve(ctx context.Context, userID int64) string
}

// UserLocales is the lookup the user-backed resolver needs. A nil locale means
// the user has not picked one.
type UserLocales interface {
	UserLocale(ctx context.Context, userID int64) (*string, error)
}

type staticResolver struct {
	tag string
}

// NewStaticResolver returns a Resolver that always yields the given tag.
func NewStaticResolver(tag string) Resolver {
	return staticResolver{tag: Normalize(tag)}
}

func (r staticResolver) Resolve(context.Context, int64) string { return r.tag }

type userResolver struct {
	src      UserLocales
	fallback string
}

// NewUserResolver returns a Resolver backed by per-user locale storage,
// falling back to the given tag when the user has no locale or the lookup fails.
func NewUserResolver(src UserLocales, fallback string) Resolver {
	return userResolver{src: src, fallback: Normalize(fallback)}
}

func (r userResolver) Resolve(ctx context.Context, userID int64) string {
	loc, err := r.src.UserLocale(ctx, userID)
	if err != nil || loc == nil || *loc == "" {
		return r.fallback
	}
	return Normalize(*loc)
}

// Normalize reduces a locale tag to its lowercase language part
// ("fr-FR" → "fr"); unknown languages fall back to English at template lookup.
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	if tag == "" {
		return "en"
	}
	return tag
}
