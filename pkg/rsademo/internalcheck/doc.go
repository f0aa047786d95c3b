// Package internalcheck holds static policy tests for the rsademo module.
//
// The tests load the module's packages with golang.org/x/tools/go/packages
// and walk their syntax trees. They guard rules that the compiler cannot:
// big integers are compared by value, and the private exponent never reaches
// a print, format or log call.
//
// # Internal Use Only
//
// This package exports nothing and should not be imported.
package internalcheck
