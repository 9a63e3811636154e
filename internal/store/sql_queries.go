package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog-api/models"
)

var (
	userColumns    = []string{"id", "name", "email", "password", "role", "status", "created_at", "updated_at"}
	postColumns    = []string{"id", "title", "content", "user_id", "status", "created_at", "updated_at"}
	commentColumns = []string{"id", "comment", "user_id", "post_id", "status", "created_at", "updated_at"}

	// authorColumns is what a joined author exposes. The password hash is
	// never read along with a post or comment.
	authorColumns = []string{"id", "name", "email", "role", "status", "created_at", "updated_at"}
)

func qualify(table string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = table + "." + c
	}
	return out
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

var currentTimestamp = sq.Expr("CURRENT_TIMESTAMP")

// ── users ───────────────────────────────────────────────────────────────────

func insertUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("name", "email", "password", "role").
		Values(u.Name, u.Email, u.Password, u.Role).
		Suffix(returning(userColumns)).
		ToSql()
}

func selectUsersQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"status": models.StatusActive}).
		OrderBy("id")
}

func updateUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Update("users").
		Set("name", u.Name).
		Set("email", u.Email).
		Set("password", u.Password).
		Set("role", u.Role).
		Set("updated_at", currentTimestamp).
		Where(sq.And{sq.Eq{"id": u.ID}, sq.Eq{"status": models.StatusActive}}).
		Suffix(returning(userColumns)).
		ToSql()
}

// ── posts ───────────────────────────────────────────────────────────────────

func insertPostQuery(b sq.StatementBuilderType, p models.Post) (string, []any, error) {
	return b.Insert("posts").
		Columns("title", "content", "user_id").
		Values(p.Title, p.Content, p.UserID).
		Suffix(returning(postColumns)).
		ToSql()
}

func selectPostsQuery(b sq.StatementBuilderType, author Relation) sq.SelectBuilder {
	columns := append(qualify("posts", postColumns), qualify(author.Alias, authorColumns)...)
	return b.Select(columns...).
		From("posts").
		Join(author.Join()).
		Where(sq.Eq{"posts.status": models.StatusActive}).
		OrderBy("posts.id")
}

func updatePostQuery(b sq.StatementBuilderType, p models.Post) (string, []any, error) {
	return b.Update("posts").
		Set("title", p.Title).
		Set("content", p.Content).
		Set("updated_at", currentTimestamp).
		Where(sq.And{sq.Eq{"id": p.ID}, sq.Eq{"status": models.StatusActive}}).
		Suffix(returning(postColumns)).
		ToSql()
}

// ── comments ────────────────────────────────────────────────────────────────

func insertCommentQuery(b sq.StatementBuilderType, c models.Comment) (string, []any, error) {
	return b.Insert("comments").
		Columns("comment", "user_id", "post_id").
		Values(c.Comment, c.UserID, c.PostID).
		Suffix(returning(commentColumns)).
		ToSql()
}

func selectCommentsQuery(b sq.StatementBuilderType, author Relation) sq.SelectBuilder {
	columns := append(qualify("comments", commentColumns), qualify(author.Alias, authorColumns)...)
	return b.Select(columns...).
		From("comments").
		Join(author.Join()).
		Where(sq.Eq{"comments.status": models.StatusActive}).
		OrderBy("comments.id")
}

func updateCommentQuery(b sq.StatementBuilderType, c models.Comment) (string, []any, error) {
	return b.Update("comments").
		Set("comment", c.Comment).
		Set("updated_at", currentTimestamp).
		Where(sq.And{sq.Eq{"id": c.ID}, sq.Eq{"status": models.StatusActive}}).
		Suffix(returning(commentColumns)).
		ToSql()
}

// ── shared ──────────────────────────────────────────────────────────────────

// softDeleteQuery marks an active row of table as deleted.
func softDeleteQuery(b sq.StatementBuilderType, table string, id int64) (string, []any, error) {
	return b.Update(table).
		Set("status", models.StatusDeleted).
		Set("updated_at", currentTimestamp).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"status": models.StatusActive}}).
		ToSql()
}

// ── scanners ────────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func scanPost(row rowScanner) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanPostWithAuthor(row rowScanner) (models.Post, error) {
	var p models.Post
	var a models.User
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.UserID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&a.ID, &a.Name, &a.Email, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	p.User = &a
	return p, err
}

func scanComment(row rowScanner) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.Comment, &c.UserID, &c.PostID, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanCommentWithAuthor(row rowScanner) (models.Comment, error) {
	var c models.Comment
	var a models.User
	err := row.Scan(
		&c.ID, &c.Comment, &c.UserID, &c.PostID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		&a.ID, &a.Name, &a.Email, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	c.User = &a
	return c, err
}
