package validation

// TaskValidator provides validation for task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithValidator creates a task validator sharing an
// existing (possibly configured) validator.
func NewTaskValidatorWithValidator(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateDescription validates a task description for creation or update
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(description) {
		validationError.AddRequiredError("description")
		return validationError
	}

	if !tv.validator.IsValidDescriptionLength(description) {
		validationError.AddInvalidLengthError("description", description,
			tv.validator.getDescriptionMinLength(), tv.validator.getDescriptionMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateStatusName validates a status string supplied on the command line
func (tv *TaskValidator) ValidateStatusName(status string) error {
	if !tv.validator.IsValidStatusName(status) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", status, "must be one of: todo, in-progress, done")
		return validationError
	}
	return nil
}

// ValidateStatusFilter validates an optional status filter (empty means all)
func (tv *TaskValidator) ValidateStatusFilter(status string) error {
	if status == "" {
		return nil
	}
	return tv.ValidateStatusName(status)
}
