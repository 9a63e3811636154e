package store

import (
	"errors"
	"fmt"
)

var ErrInvalidRelation = errors.New("invalid relation")

// RelationKind tells which side of a relation holds the foreign key.
type RelationKind int

const (
	// BelongsTo means Table holds ForeignKey pointing at Target.id.
	BelongsTo RelationKind = iota
	// HasMany means Target holds ForeignKey pointing at Table.id.
	HasMany
)

// Relation describes how two tables are associated. Repositories use it to
// eager-load associated rows.
type Relation struct {
	Kind       RelationKind
	Table      string
	Target     string
	Alias      string
	ForeignKey string
}

// Join renders the relation as the argument of a squirrel Join call.
func (r Relation) Join() string {
	if r.Kind == HasMany {
		return fmt.Sprintf("%s AS %s ON %s.%s = %s.id", r.Target, r.Alias, r.Alias, r.ForeignKey, r.Table)
	}
	return fmt.Sprintf("%s AS %s ON %s.id = %s.%s", r.Target, r.Alias, r.Alias, r.Table, r.ForeignKey)
}

// Column qualifies column with the relation alias.
func (r Relation) Column(column string) string {
	return r.Alias + "." + column
}

func (r Relation) validate() error {
	if r.Table == "" || r.Target == "" || r.Alias == "" || r.ForeignKey == "" {
		return fmt.Errorf("%w: %+v", ErrInvalidRelation, r)
	}
	if r.Kind != BelongsTo && r.Kind != HasMany {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidRelation, r.Kind)
	}
	return nil
}

// Relations holds every association between users, posts and comments:
//
//	users 1 ── * posts
//	users 1 ── * comments
//	posts 1 ── * comments
type Relations struct {
	PostAuthor    Relation
	PostComments  Relation
	CommentAuthor Relation
}

// InitRelations declares the associations of the data model. It must run
// before any repository is constructed.
func InitRelations() (*Relations, error) {
	r := &Relations{
		PostAuthor: Relation{
			Kind: BelongsTo, Table: "posts", Target: "users", Alias: "author", ForeignKey: "user_id",
		},
		PostComments: Relation{
			Kind: HasMany, Table: "posts", Target: "comments", Alias: "c", ForeignKey: "post_id",
		},
		CommentAuthor: Relation{
			Kind: BelongsTo, Table: "comments", Target: "users", Alias: "author", ForeignKey: "user_id",
		},
	}

	for _, rel := range []Relation{r.PostAuthor, r.PostComments, r.CommentAuthor} {
		if err := rel.validate(); err != nil {
			return nil, err
		}
	}

	return r, nil
}
