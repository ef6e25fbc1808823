package dto

// ReportQuery selects the weekly report format.
type ReportQuery struct {
	Format string `form:"format" validate:"omitempty,oneof=csv pdf"`
	Grade  string `form:"grade" validate:"max=32"`
}
