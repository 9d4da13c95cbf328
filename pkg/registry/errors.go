/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package registry

import "fmt"

func ErrUnknownInterface(name string) error {
	return fmt.Errorf("implements relation refers to unknown interface %q", name)
}

func ErrMissingType(class, name string) error {
	return fmt.Errorf("%s %q has no declared type", class, name)
}

func ErrMissingArguments(name string) error {
	return fmt.Errorf("operation %q has no argument list", name)
}

func ErrMalformedConst(name string) error {
	return fmt.Errorf("const %q has no type and value children", name)
}
