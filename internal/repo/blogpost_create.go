// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/blogpost"
)

// BlogPostCreate is the builder for creating a BlogPost entity.
type BlogPostCreate struct {
	config
	mutation *BlogPostMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlogPostCreate) SetCreatedAt(v time.Time) *BlogPostCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlogPostCreate) SetNillableCreatedAt(v *time.Time) *BlogPostCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BlogPostCreate) SetUpdatedAt(v time.Time) *BlogPostCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BlogPostCreate) SetNillableUpdatedAt(v *time.Time) *BlogPostCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *BlogPostCreate) SetTitle(v string) *BlogPostCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *BlogPostCreate) SetSlug(v string) *BlogPostCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *BlogPostCreate) SetDescription(v string) *BlogPostCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *BlogPostCreate) SetContent(v string) *BlogPostCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *BlogPostCreate) SetAuthorID(v uuid.UUID) *BlogPostCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetFeaturedImageKey sets the "featured_image_key" field.
func (_c *BlogPostCreate) SetFeaturedImageKey(v string) *BlogPostCreate {
	_c.mutation.SetFeaturedImageKey(v)
	return _c
}

// SetNillableFeaturedImageKey sets the "featured_image_key" field if the given value is not nil.
func (_c *BlogPostCreate) SetNillableFeaturedImageKey(v *string) *BlogPostCreate {
	if v != nil {
		_c.SetFeaturedImageKey(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *BlogPostCreate) SetPublished(v bool) *BlogPostCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *BlogPostCreate) SetNillablePublished(v *bool) *BlogPostCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *BlogPostCreate) SetPublishedAt(v time.Time) *BlogPostCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *BlogPostCreate) SetNillablePublishedAt(v *time.Time) *BlogPostCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlogPostCreate) SetID(v uuid.UUID) *BlogPostCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BlogPostCreate) SetNillableID(v *uuid.UUID) *BlogPostCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BlogPostMutation object of the builder.
func (_c *BlogPostCreate) Mutation() *BlogPostMutation {
	return _c.mutation
}

// Save creates the BlogPost in the database.
func (_c *BlogPostCreate) Save(ctx context.Context) (*BlogPost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlogPostCreate) SaveX(ctx context.Context) *BlogPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlogPostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlogPostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlogPostCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blogpost.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := blogpost.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := blogpost.DefaultPublished
		_c.mutation.SetPublished(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := blogpost.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlogPostCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BlogPost.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "BlogPost.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "BlogPost.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := blogpost.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "BlogPost.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "BlogPost.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := blogpost.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "BlogPost.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "BlogPost.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := blogpost.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "BlogPost.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`repo: missing required field "BlogPost.content"`)}
	}
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`repo: missing required field "BlogPost.author_id"`)}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`repo: missing required field "BlogPost.published"`)}
	}
	return nil
}

func (_c *BlogPostCreate) sqlSave(ctx context.Context) (*BlogPost, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlogPostCreate) createSpec() (*BlogPost, *sqlgraph.CreateSpec) {
	var (
		_node = &BlogPost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blogpost.Table, sqlgraph.NewFieldSpec(blogpost.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blogpost.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(blogpost.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(blogpost.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(blogpost.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(blogpost.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(blogpost.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.AuthorID(); ok {
		_spec.SetField(blogpost.FieldAuthorID, field.TypeUUID, value)
		_node.AuthorID = value
	}
	if value, ok := _c.mutation.FeaturedImageKey(); ok {
		_spec.SetField(blogpost.FieldFeaturedImageKey, field.TypeString, value)
		_node.FeaturedImageKey = &value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(blogpost.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(blogpost.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BlogPost.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlogPostUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BlogPostCreate) OnConflict(opts ...sql.ConflictOption) *BlogPostUpsertOne {
	_c.conflict = opts
	return &BlogPostUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BlogPost.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlogPostCreate) OnConflictColumns(columns ...string) *BlogPostUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlogPostUpsertOne{
		create: _c,
	}
}

type (
	// BlogPostUpsertOne is the builder for "upsert"-ing
	//  one BlogPost node.
	BlogPostUpsertOne struct {
		create *BlogPostCreate
	}

	// BlogPostUpsert is the "OnConflict" setter.
	BlogPostUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BlogPostUpsert) SetUpdatedAt(v time.Time) *BlogPostUpsert {
	u.Set(blogpost.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BlogPostUpsert) UpdateUpdatedAt() *BlogPostUpsert {
	u.SetExcluded(blogpost.FieldUpdatedAt)
	return u
}

// SetTitle sets the "title" field.
func (u *BlogPostUpsert) SetTitle(v string) *BlogPostUpsert {
	u.Set(blogpost.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *BlogPostUpsert) UpdateTitle() *BlogPostUpsert {
	u.SetExcluded(blogpost.FieldTitle)
	return u
}

// SetSlug sets the "slug" field.
func (u *BlogPostUpsert) SetSlug(v string) *BlogPostUpsert {
	u.Set(blogpost.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BlogPostUpsert) UpdateSlug() *BlogPostUpsert {
	u.SetExcluded(blogpost.FieldSlug)
	return u
}

// SetDescription sets the "description" field.
func (u *BlogPostUpsert) SetDescription(v string) *BlogPostUpsert {
	u.Set(blogpost.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BlogPostUpsert) UpdateDescription() *BlogPostUpsert {
	u.SetExcluded(blogpost.FieldDescription)
	return u
}

// SetContent sets the "content" field.
func (u *BlogPostUpsert) SetContent(v string) *BlogPostUpsert {
	u.Set(blogpost.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *BlogPostUpsert) UpdateContent() *BlogPostUpsert {
	u.SetExcluded(blogpost.FieldContent)
	return u
}

// SetAuthorID sets the "author_id" field.
func (u *BlogPostUpsert) SetAuthorID(v uuid.UUID) *BlogPostUpsert {
	u.Set(blogpost.FieldAuthorID, v)
	return u
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *BlogPostUpsert) UpdateAuthorID() *BlogPostUpsert {
	u.SetExcluded(blogpost.FieldAuthorID)
	return u
}

// SetFeaturedImageKey sets the "featured_image_key" field.
func (u *BlogPostUpsert) SetFeaturedImageKey(v string) *BlogPostUpsert {
	u.Set(blogpost.FieldFeaturedImageKey, v)
	return u
}

// UpdateFeaturedImageKey sets the "featured_image_key" field to the value that was provided on create.
func (u *BlogPostUpsert) UpdateFeaturedImageKey() *BlogPostUpsert {
	u.SetExcluded(blogpost.FieldFeaturedImageKey)
	return u
}

// ClearFeaturedImageKey clears the value of the "featured_image_key" field.
func (u *BlogPostUpsert) ClearFeaturedImageKey() *BlogPostUpsert {
	u.SetNull(blogpost.FieldFeaturedImageKey)
	return u
}

// SetPublished sets the "published" field.
func (u *BlogPostUpsert) SetPublished(v bool) *BlogPostUpsert {
	u.Set(blogpost.FieldPublished, v)
	return u
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *BlogPostUpsert) UpdatePublished() *BlogPostUpsert {
	u.SetExcluded(blogpost.FieldPublished)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *BlogPostUpsert) SetPublishedAt(v time.Time) *BlogPostUpsert {
	u.Set(blogpost.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *BlogPostUpsert) UpdatePublishedAt() *BlogPostUpsert {
	u.SetExcluded(blogpost.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *BlogPostUpsert) ClearPublishedAt() *BlogPostUpsert {
	u.SetNull(blogpost.FieldPublishedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BlogPost.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(blogpost.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BlogPostUpsertOne) UpdateNewValues() *BlogPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(blogpost.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(blogpost.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BlogPost.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BlogPostUpsertOne) Ignore() *BlogPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlogPostUpsertOne) DoNothing() *BlogPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlogPostCreate.OnConflict
// documentation for more info.
func (u *BlogPostUpsertOne) Update(set func(*BlogPostUpsert)) *BlogPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlogPostUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BlogPostUpsertOne) SetUpdatedAt(v time.Time) *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BlogPostUpsertOne) UpdateUpdatedAt() *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTitle sets the "title" field.
func (u *BlogPostUpsertOne) SetTitle(v string) *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *BlogPostUpsertOne) UpdateTitle() *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateTitle()
	})
}

// SetSlug sets the "slug" field.
func (u *BlogPostUpsertOne) SetSlug(v string) *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BlogPostUpsertOne) UpdateSlug() *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateSlug()
	})
}

// SetDescription sets the "description" field.
func (u *BlogPostUpsertOne) SetDescription(v string) *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BlogPostUpsertOne) UpdateDescription() *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateDescription()
	})
}

// SetContent sets the "content" field.
func (u *BlogPostUpsertOne) SetContent(v string) *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *BlogPostUpsertOne) UpdateContent() *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateContent()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *BlogPostUpsertOne) SetAuthorID(v uuid.UUID) *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *BlogPostUpsertOne) UpdateAuthorID() *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateAuthorID()
	})
}

// SetFeaturedImageKey sets the "featured_image_key" field.
func (u *BlogPostUpsertOne) SetFeaturedImageKey(v string) *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetFeaturedImageKey(v)
	})
}

// UpdateFeaturedImageKey sets the "featured_image_key" field to the value that was provided on create.
func (u *BlogPostUpsertOne) UpdateFeaturedImageKey() *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateFeaturedImageKey()
	})
}

// ClearFeaturedImageKey clears the value of the "featured_image_key" field.
func (u *BlogPostUpsertOne) ClearFeaturedImageKey() *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.ClearFeaturedImageKey()
	})
}

// SetPublished sets the "published" field.
func (u *BlogPostUpsertOne) SetPublished(v bool) *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *BlogPostUpsertOne) UpdatePublished() *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *BlogPostUpsertOne) SetPublishedAt(v time.Time) *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *BlogPostUpsertOne) UpdatePublishedAt() *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *BlogPostUpsertOne) ClearPublishedAt() *BlogPostUpsertOne {
	return u.Update(func(s *BlogPostUpsert) {
		s.ClearPublishedAt()
	})
}

// Exec executes the query.
func (u *BlogPostUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BlogPostCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlogPostUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BlogPostUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: BlogPostUpsertOne.ID is not supported by MySQL driver. Use BlogPostUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BlogPostUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BlogPostCreateBulk is the builder for creating many BlogPost entities in bulk.
type BlogPostCreateBulk struct {
	config
	err      error
	builders []*BlogPostCreate
	conflict []sql.ConflictOption
}

// Save creates the BlogPost entities in the database.
func (_c *BlogPostCreateBulk) Save(ctx context.Context) ([]*BlogPost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlogPost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlogPostMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BlogPostCreateBulk) SaveX(ctx context.Context) []*BlogPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlogPostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlogPostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BlogPost.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlogPostUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BlogPostCreateBulk) OnConflict(opts ...sql.ConflictOption) *BlogPostUpsertBulk {
	_c.conflict = opts
	return &BlogPostUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BlogPost.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlogPostCreateBulk) OnConflictColumns(columns ...string) *BlogPostUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlogPostUpsertBulk{
		create: _c,
	}
}

// BlogPostUpsertBulk is the builder for "upsert"-ing
// a bulk of BlogPost nodes.
type BlogPostUpsertBulk struct {
	create *BlogPostCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BlogPost.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(blogpost.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BlogPostUpsertBulk) UpdateNewValues() *BlogPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(blogpost.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(blogpost.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BlogPost.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BlogPostUpsertBulk) Ignore() *BlogPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlogPostUpsertBulk) DoNothing() *BlogPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlogPostCreateBulk.OnConflict
// documentation for more info.
func (u *BlogPostUpsertBulk) Update(set func(*BlogPostUpsert)) *BlogPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlogPostUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BlogPostUpsertBulk) SetUpdatedAt(v time.Time) *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BlogPostUpsertBulk) UpdateUpdatedAt() *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTitle sets the "title" field.
func (u *BlogPostUpsertBulk) SetTitle(v string) *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *BlogPostUpsertBulk) UpdateTitle() *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateTitle()
	})
}

// SetSlug sets the "slug" field.
func (u *BlogPostUpsertBulk) SetSlug(v string) *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BlogPostUpsertBulk) UpdateSlug() *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateSlug()
	})
}

// SetDescription sets the "description" field.
func (u *BlogPostUpsertBulk) SetDescription(v string) *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BlogPostUpsertBulk) UpdateDescription() *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateDescription()
	})
}

// SetContent sets the "content" field.
func (u *BlogPostUpsertBulk) SetContent(v string) *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *BlogPostUpsertBulk) UpdateContent() *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateContent()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *BlogPostUpsertBulk) SetAuthorID(v uuid.UUID) *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *BlogPostUpsertBulk) UpdateAuthorID() *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateAuthorID()
	})
}

// SetFeaturedImageKey sets the "featured_image_key" field.
func (u *BlogPostUpsertBulk) SetFeaturedImageKey(v string) *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetFeaturedImageKey(v)
	})
}

// UpdateFeaturedImageKey sets the "featured_image_key" field to the value that was provided on create.
func (u *BlogPostUpsertBulk) UpdateFeaturedImageKey() *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdateFeaturedImageKey()
	})
}

// ClearFeaturedImageKey clears the value of the "featured_image_key" field.
func (u *BlogPostUpsertBulk) ClearFeaturedImageKey() *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.ClearFeaturedImageKey()
	})
}

// SetPublished sets the "published" field.
func (u *BlogPostUpsertBulk) SetPublished(v bool) *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *BlogPostUpsertBulk) UpdatePublished() *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *BlogPostUpsertBulk) SetPublishedAt(v time.Time) *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *BlogPostUpsertBulk) UpdatePublishedAt() *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *BlogPostUpsertBulk) ClearPublishedAt() *BlogPostUpsertBulk {
	return u.Update(func(s *BlogPostUpsert) {
		s.ClearPublishedAt()
	})
}

// Exec executes the query.
func (u *BlogPostUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the BlogPostCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BlogPostCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlogPostUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
