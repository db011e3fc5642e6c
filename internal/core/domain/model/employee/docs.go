// Package employee models staff accounts, their roles and what each role
// may do.
//
// Passwords never leave the aggregate in clear text: NewEmployee and
// ChangePassword store a bcrypt hash and CheckPassword compares against it.
package employee
