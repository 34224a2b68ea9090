package active

import "fmt"

// Association kinds.
const (
	BELONGS_TO = iota
	HAS_ONE
	HAS_MANY
)

// Options carries per-relationship overrides for the mapping declaration
// shape: Name replaces the generated accessor, Path the generated
// template.
type Options struct {
	Name string
	Path string
}

/*
Config declares a resource type. Only Name is required:

    active.New(active.Config{Name: "comment"})

declares records reachable under "http://localhost/comments" with an "id"
identifier. Everything else refines the defaults.

The three relationship fields each accept three declaration shapes:

    BelongsTo: "author"                        // single target name
    BelongsTo: authors                         // or the resource itself
    HasMany:   []string{"comment", "vote"}     // set of target names
    HasMany: map[string]active.Options{        // names with overrides
        "comment": {Path: "posts/:id/replies"},
    }

The BelongsToName/BelongsToPath pairs (and their has_one/has_many
siblings) are the overrides for the single-name shape; the other shapes
ignore them.
*/
type Config struct {
	Name    string
	Path    string
	UID     string
	URL     string
	Session *Session

	BelongsTo any
	HasOne    any
	HasMany   any

	BelongsToName string
	BelongsToPath string
	HasOneName    string
	HasOnePath    string
	HasManyName   string
	HasManyPath   string
}

/*
Resource describes a declared resource type and is the handle collection
operations are called on. Relationship declarations are compiled once, at
declaration time, into a table of accessors; targets are resolved through
the registry when an accessor is first used, never earlier.
*/
type Resource struct {
	Name    string
	Path    string
	UID     string
	URL     string
	Session *Session

	config    Config
	relations map[string]*relation
}

// relation is one compiled relationship: the accessor consumers call, the
// path template it interpolates, and how to find the target type.
type relation struct {
	kind     int
	target   string // registry key, already underscored
	direct   *Resource
	accessor string
	template string
	fk       string // belongs_to only: the owner field holding the target id
}

/*
New declares a resource type: applies defaults, compiles the relationship
declarations (a malformed one is a ShapeError here and now) and registers
the result under Config.Name. Redeclaring a name replaces the earlier
registration for everything resolved afterwards.
*/
func New(config Config) (*Resource, error) {
	if config.Name == "" {
		return nil, fmt.Errorf("resource declaration without a name")
	}
	resource, err := newResource(config)
	if err != nil {
		return nil, err
	}
	Register(resource.Name, resource)
	return resource, nil
}

// newResource builds and compiles a resource without registering it; child
// synthesis goes through here directly.
func newResource(config Config) (*Resource, error) {
	name := underscore(config.Name)
	resource := &Resource{
		Name:    name,
		Path:    config.Path,
		UID:     config.UID,
		URL:     config.URL,
		Session: config.Session,
		config:  config,
	}
	if resource.Path == "" {
		resource.Path = pluralize(name)
	}
	if resource.UID == "" {
		resource.UID = DefaultUID
	}
	if resource.URL == "" {
		resource.URL = DefaultURL
	}
	if resource.Session == nil {
		resource.Session = DefaultSession
	}
	if err := resource.compileRelations(); err != nil {
		return nil, err
	}
	return resource, nil
}

// declaration is one target extracted from a declaration shape.
type declaration struct {
	target  string
	direct  *Resource
	options Options
}

// expandShape flattens any of the three declaration shapes into a list of
// targets. classOptions are the Config-level overrides; only the
// single-name shape sees them.
func expandShape(kind string, declared any, classOptions Options) ([]declaration, error) {
	switch value := declared.(type) {
	case nil:
		return nil, nil
	case string:
		return []declaration{{target: value, options: classOptions}}, nil
	case *Resource:
		return []declaration{
			{target: value.Name, direct: value, options: classOptions},
		}, nil
	case []string:
		result := make([]declaration, 0, len(value))
		for _, name := range value {
			result = append(result, declaration{target: name})
		}
		return result, nil
	case map[string]Options:
		result := make([]declaration, 0, len(value))
		for name, options := range value {
			result = append(result, declaration{target: name, options: options})
		}
		return result, nil
	default:
		return nil, &ShapeError{Kind: kind, Value: declared}
	}
}

func (r *Resource) compileRelations() error {
	r.relations = make(map[string]*relation)

	belongsTo, err := expandShape("belongs_to", r.config.BelongsTo,
		Options{Name: r.config.BelongsToName, Path: r.config.BelongsToPath})
	if err != nil {
		return err
	}
	for _, declared := range belongsTo {
		r.compileBelongsTo(declared)
	}

	hasOne, err := expandShape("has_one", r.config.HasOne,
		Options{Name: r.config.HasOneName, Path: r.config.HasOnePath})
	if err != nil {
		return err
	}
	for _, declared := range hasOne {
		r.compileHasOne(declared)
	}

	hasMany, err := expandShape("has_many", r.config.HasMany,
		Options{Name: r.config.HasManyName, Path: r.config.HasManyPath})
	if err != nil {
		return err
	}
	for _, declared := range hasMany {
		r.compileHasMany(declared)
	}

	return nil
}

// compileBelongsTo: accessor defaults to the underscored target name, the
// template to "{plural accessor}/:{accessor}_{uid}" where uid is the
// OWNER's identifier field. Interpolation happens against the owning
// record at access time, so the owner must carry the foreign key field.
func (r *Resource) compileBelongsTo(d declaration) {
	accessor := underscore(d.target)
	if d.options.Name != "" {
		accessor = underscore(d.options.Name)
	}
	fk := accessor + "_" + r.UID
	template := d.options.Path
	if template == "" {
		template = fmt.Sprintf("%s/:%s", pluralize(accessor), fk)
	}
	r.relations[accessor] = &relation{
		kind:     BELONGS_TO,
		target:   underscore(d.target),
		direct:   d.direct,
		accessor: accessor,
		template: template,
		fk:       fk,
	}
}

// compileHasOne: the template hangs the accessor under the owner's own
// instance path, "{path}/:{uid}/{accessor}". Derived once per type;
// interpolated per record.
func (r *Resource) compileHasOne(d declaration) {
	target := underscore(d.target)
	accessor := target
	if d.options.Name != "" {
		accessor = underscore(d.options.Name)
	}
	template := d.options.Path
	if template == "" {
		template = fmt.Sprintf("%s/:%s/%s", r.Path, r.UID, accessor)
	}
	r.relations[accessor] = &relation{
		kind:     HAS_ONE,
		target:   target,
		direct:   d.direct,
		accessor: accessor,
		template: template,
	}
}

// compileHasMany: like has_one but the accessor pluralizes, and access
// synthesizes a scoped child resource instead of fetching.
func (r *Resource) compileHasMany(d declaration) {
	target := underscore(d.target)
	accessor := pluralize(target)
	if d.options.Name != "" {
		accessor = underscore(d.options.Name)
	}
	template := d.options.Path
	if template == "" {
		template = fmt.Sprintf("%s/:%s/%s", r.Path, r.UID, accessor)
	}
	r.relations[accessor] = &relation{
		kind:     HAS_MANY,
		target:   target,
		direct:   d.direct,
		accessor: accessor,
		template: template,
	}
}

// Relations lists the compiled accessor names by kind, for callers that
// want to enumerate what a resource declares.
func (r *Resource) Relations() map[string]int {
	result := make(map[string]int, len(r.relations))
	for accessor, rel := range r.relations {
		result[accessor] = rel.kind
	}
	return result
}

// resolve finds the relation's target, consulting the registry at access
// time so declaration order between resources never matters.
func (rel *relation) resolve() (*Resource, bool) {
	if rel.direct != nil {
		return rel.direct, true
	}
	return Resolve(rel.target)
}

// endpoint interpolates the relation's template against the owning record
// and grounds it on the owner's base URL.
func (rel *relation) endpoint(owner *Record) (string, error) {
	path, err := Interpolate(rel.template, owner.Fields)
	if err != nil {
		return "", err
	}
	return joinURL(owner.resource.URL, path), nil
}

// fetch performs the GET behind a singular association and wraps the
// response as a record of the target type. A has_one answers a 404 with
// absence: nil record, nil error.
func (rel *relation) fetch(owner *Record) (*Record, error) {
	target, resolved := rel.resolve()
	if !resolved {
		return nil, &ResolutionError{Target: rel.target}
	}
	endpoint, err := rel.endpoint(owner)
	if err != nil {
		return nil, err
	}
	body, err := owner.resource.Session.request("GET", endpoint, nil)
	if err != nil {
		if rel.kind == HAS_ONE && IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	fields, err := decodeFields(body)
	if err != nil {
		return nil, err
	}
	return target.Record(fields), nil
}

// child synthesizes the scoped resource behind a has_many association: the
// target type's own declarations, recompiled under the owner's
// interpolated path and the owner's URL and session. An unregistered
// target degrades to a bare resource. The child is neither registered nor
// cached; every access builds a fresh one.
func (rel *relation) child(owner *Record) (*Resource, error) {
	path, err := Interpolate(rel.template, owner.Fields)
	if err != nil {
		return nil, err
	}
	config := Config{Name: rel.accessor}
	if target, resolved := rel.resolve(); resolved {
		config = target.config
		config.Name = rel.accessor
	}
	config.Path = path
	config.URL = owner.resource.URL
	config.Session = owner.resource.Session
	return newResource(config)
}
