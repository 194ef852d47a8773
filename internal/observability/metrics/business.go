package metrics

// Entity label values.
const (
	EntityAuthor = "author"
	EntityPost   = "post"
)

// Duplicate name detection points.
const (
	ConflictPrecheck   = "precheck"
	ConflictConstraint = "constraint"
)

// RecordEntityCreated records a successfully persisted author or post.
func RecordEntityCreated(entity string) {
	EntitiesCreatedTotal.WithLabelValues(entity).Inc()
}

// RecordValidationFailure records a write rejected by a field rule.
// field is the ValidationError field name, so cardinality stays bounded.
func RecordValidationFailure(entity, field string) {
	ValidationFailuresTotal.WithLabelValues(entity, field).Inc()
}

// RecordDuplicateName records a duplicate author name and where it was caught.
func RecordDuplicateName(source string) {
	DuplicateNameConflictsTotal.WithLabelValues(source).Inc()
}
