package mapreduce

// JobOption configures a single BuildAndSubmit invocation.
type JobOption interface {
	isJobOption()
}

type archiveOption struct {
	archive string
}

func (*archiveOption) isJobOption() {}

// WithArchive ships a bundled archive with the job. Scripts resolve
// against the directory named by the fragment after the last '#' of
// the reference.
func WithArchive(archive string) JobOption {
	return &archiveOption{archive}
}

type mapperOption struct {
	script string
	args   string
}

func (*mapperOption) isJobOption() {}

// WithMapper sets the mapper script, with args appended verbatim to
// the composed command. Every job needs a mapper.
func WithMapper(script, args string) JobOption {
	return &mapperOption{script, args}
}

type reducerOption struct {
	script string
	args   string
}

func (*reducerOption) isJobOption() {}

// WithReducer sets the reducer script. Jobs without one are map-only.
func WithReducer(script, args string) JobOption {
	return &reducerOption{script, args}
}

type jobNameOption struct {
	name string
}

func (*jobNameOption) isJobOption() {}

func WithJobName(name string) JobOption {
	return &jobNameOption{name}
}
