package model

// CanMutate reports whether the given admin owns this form.
func (f *Form) CanMutate(adminID string) bool {
	return f.AdminID == adminID
}

// CanEditContent reports whether title/description/questions may still be
// changed. Content is locked as soon as the first response exists; status
// toggling is exempt from this rule.
func (f *Form) CanEditContent() bool {
	return f.ResponseCount == 0
}

func (f *Form) IsOpenForSubmission() bool {
	return f.Status == StatusOpen
}
