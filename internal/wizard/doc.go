// Package wizard implements the organization and department onboarding
// wizards.
//
// An OrganizationReview is the last step of the organization wizard. Its
// submit commits the organization and the first department, then mounts a
// DepartmentSetupModal for every department in turn. Each modal wraps a
// DepartmentReview that commits the department's managers and teams. The
// cascade advances when the mounted modal closes and finishes after the
// last department.
//
// Wizards are driven sequentially. Use a Registry to share them between
// concurrent callers.
package wizard
