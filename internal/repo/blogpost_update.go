// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/blogpost"
	"github.com/medreach/hospital_backend/internal/repo/predicate"
)

// BlogPostUpdate is the builder for updating BlogPost entities.
type BlogPostUpdate struct {
	config
	hooks    []Hook
	mutation *BlogPostMutation
}

// Where appends a list predicates to the BlogPostUpdate builder.
func (_u *BlogPostUpdate) Where(ps ...predicate.BlogPost) *BlogPostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlogPostUpdate) SetUpdatedAt(v time.Time) *BlogPostUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *BlogPostUpdate) SetTitle(v string) *BlogPostUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableTitle(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BlogPostUpdate) SetSlug(v string) *BlogPostUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableSlug(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BlogPostUpdate) SetDescription(v string) *BlogPostUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableDescription(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *BlogPostUpdate) SetContent(v string) *BlogPostUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableContent(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *BlogPostUpdate) SetAuthorID(v uuid.UUID) *BlogPostUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableAuthorID(v *uuid.UUID) *BlogPostUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetFeaturedImageKey sets the "featured_image_key" field.
func (_u *BlogPostUpdate) SetFeaturedImageKey(v string) *BlogPostUpdate {
	_u.mutation.SetFeaturedImageKey(v)
	return _u
}

// SetNillableFeaturedImageKey sets the "featured_image_key" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableFeaturedImageKey(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetFeaturedImageKey(*v)
	}
	return _u
}

// ClearFeaturedImageKey clears the value of the "featured_image_key" field.
func (_u *BlogPostUpdate) ClearFeaturedImageKey() *BlogPostUpdate {
	_u.mutation.ClearFeaturedImageKey()
	return _u
}

// SetPublished sets the "published" field.
func (_u *BlogPostUpdate) SetPublished(v bool) *BlogPostUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillablePublished(v *bool) *BlogPostUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *BlogPostUpdate) SetPublishedAt(v time.Time) *BlogPostUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillablePublishedAt(v *time.Time) *BlogPostUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *BlogPostUpdate) ClearPublishedAt() *BlogPostUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// Mutation returns the BlogPostMutation object of the builder.
func (_u *BlogPostUpdate) Mutation() *BlogPostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlogPostUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogPostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlogPostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogPostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlogPostUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blogpost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogPostUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := blogpost.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "BlogPost.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := blogpost.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "BlogPost.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := blogpost.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "BlogPost.description": %w`, err)}
		}
	}
	return nil
}

func (_u *BlogPostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogpost.Table, blogpost.Columns, sqlgraph.NewFieldSpec(blogpost.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blogpost.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(blogpost.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(blogpost.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(blogpost.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(blogpost.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(blogpost.FieldAuthorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FeaturedImageKey(); ok {
		_spec.SetField(blogpost.FieldFeaturedImageKey, field.TypeString, value)
	}
	if _u.mutation.FeaturedImageKeyCleared() {
		_spec.ClearField(blogpost.FieldFeaturedImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(blogpost.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(blogpost.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(blogpost.FieldPublishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlogPostUpdateOne is the builder for updating a single BlogPost entity.
type BlogPostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlogPostMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlogPostUpdateOne) SetUpdatedAt(v time.Time) *BlogPostUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *BlogPostUpdateOne) SetTitle(v string) *BlogPostUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableTitle(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BlogPostUpdateOne) SetSlug(v string) *BlogPostUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableSlug(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BlogPostUpdateOne) SetDescription(v string) *BlogPostUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableDescription(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *BlogPostUpdateOne) SetContent(v string) *BlogPostUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableContent(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *BlogPostUpdateOne) SetAuthorID(v uuid.UUID) *BlogPostUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableAuthorID(v *uuid.UUID) *BlogPostUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetFeaturedImageKey sets the "featured_image_key" field.
func (_u *BlogPostUpdateOne) SetFeaturedImageKey(v string) *BlogPostUpdateOne {
	_u.mutation.SetFeaturedImageKey(v)
	return _u
}

// SetNillableFeaturedImageKey sets the "featured_image_key" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableFeaturedImageKey(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetFeaturedImageKey(*v)
	}
	return _u
}

// ClearFeaturedImageKey clears the value of the "featured_image_key" field.
func (_u *BlogPostUpdateOne) ClearFeaturedImageKey() *BlogPostUpdateOne {
	_u.mutation.ClearFeaturedImageKey()
	return _u
}

// SetPublished sets the "published" field.
func (_u *BlogPostUpdateOne) SetPublished(v bool) *BlogPostUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillablePublished(v *bool) *BlogPostUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *BlogPostUpdateOne) SetPublishedAt(v time.Time) *BlogPostUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillablePublishedAt(v *time.Time) *BlogPostUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *BlogPostUpdateOne) ClearPublishedAt() *BlogPostUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// Mutation returns the BlogPostMutation object of the builder.
func (_u *BlogPostUpdateOne) Mutation() *BlogPostMutation {
	return _u.mutation
}

// Where appends a list predicates to the BlogPostUpdate builder.
func (_u *BlogPostUpdateOne) Where(ps ...predicate.BlogPost) *BlogPostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlogPostUpdateOne) Select(field string, fields ...string) *BlogPostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlogPost entity.
func (_u *BlogPostUpdateOne) Save(ctx context.Context) (*BlogPost, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogPostUpdateOne) SaveX(ctx context.Context) *BlogPost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlogPostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogPostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlogPostUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blogpost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogPostUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := blogpost.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "BlogPost.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := blogpost.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "BlogPost.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := blogpost.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "BlogPost.description": %w`, err)}
		}
	}
	return nil
}

func (_u *BlogPostUpdateOne) sqlSave(ctx context.Context) (_node *BlogPost, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogpost.Table, blogpost.Columns, sqlgraph.NewFieldSpec(blogpost.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BlogPost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blogpost.FieldID)
		for _, f := range fields {
			if !blogpost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != blogpost.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blogpost.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(blogpost.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(blogpost.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(blogpost.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(blogpost.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(blogpost.FieldAuthorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FeaturedImageKey(); ok {
		_spec.SetField(blogpost.FieldFeaturedImageKey, field.TypeString, value)
	}
	if _u.mutation.FeaturedImageKeyCleared() {
		_spec.ClearField(blogpost.FieldFeaturedImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(blogpost.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(blogpost.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(blogpost.FieldPublishedAt, field.TypeTime)
	}
	_node = &BlogPost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
