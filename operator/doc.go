// Package operator implements the Drift and Kick sub-operators: the
// recursive, shell-aware position/velocity update that alternates with
// itself at ever finer sub-steps wherever the membership engine (package
// shell) finds particles that must descend.
//
// Drift and Kick never touch the particle array directly except through
// the owning-shell inclusion rules; everything else — prediction,
// role-map bookkeeping, force evaluation — is delegated to shell, scheme
// and gravity.
package operator
