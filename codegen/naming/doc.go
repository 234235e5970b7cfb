// Package naming derives source code identifiers from REST route templates,
// HTTP verbs and content types.
//
// Method names follow the verb and the trailing segments of a route
// ("getUserById" for GET /users/{id}); class names are spans of route
// segments. All operations are pure: blank input
// yields an empty string rather than an error, and every identifier
// producing function returns text restricted to [0-9a-zA-Z_$].
//
// Package level functions use a shared Namer built once from DefaultConfig.
// Generators that need extra inflection rules build their own with New.
package naming
