/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package widl

// Node class tags
const (
	ClassInterface     = "Interface"
	ClassImplements    = "Implements"
	ClassConst         = "Const"
	ClassAttribute     = "Attribute"
	ClassOperation     = "Operation"
	ClassArguments     = "Arguments"
	ClassArgument      = "Argument"
	ClassType          = "Type"
	ClassTyperef       = "Typeref"
	ClassValue         = "Value"
	ClassExtAttributes = "ExtAttributes"
	ClassExtAttribute  = "ExtAttribute"
	ClassInherit       = "Inherit"
)

// Node property keys
const (
	PropPartial   = "Partial"
	PropFilename  = "FILENAME"
	PropReference = "REFERENCE"
	PropReadonly  = "READONLY"
	PropStatic    = "STATIC"
	PropGetter    = "GETTER"
	PropSetter    = "SETTER"
	PropDeleter   = "DELETER"
)
