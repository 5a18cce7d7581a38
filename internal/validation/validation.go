// Package validation contains the logic for validating
// request data.
//
// Request types implement Validatable. Their Validate methods run the
// checks in a fixed order: required fields, then email/phone formats,
// then dates, then enumerations (struct tags checked by the `validator`
// library). The first failing step decides the message the client sees.
package validation
