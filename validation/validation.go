// Package validation holds the pure request validators. Each function
// checks its fields in a fixed order and returns the first violation,
// so clients always see one deterministic message per bad request.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Registration checks the signup payload. Uniqueness of username and
// email is not checked here; that belongs to the store layer.
func Registration(username, firstname, lastname, email, password string) error {
	if err := requiredMin("username", username, 3); err != nil {
		return err
	}
	if err := requiredMin("firstname", firstname, 3); err != nil {
		return err
	}
	if err := requiredMin("lastname", lastname, 3); err != nil {
		return err
	}
	if err := requiredMin("email", email, 6); err != nil {
		return err
	}
	if !emailPattern.MatchString(email) {
		return errors.New("email must be a valid email address")
	}
	return requiredMin("password", password, 6)
}

// Login checks the login payload.
func Login(username, password string) error {
	if err := requiredMin("username", username, 3); err != nil {
		return err
	}
	return requiredMin("password", password, 6)
}

// Password checks a standalone password change.
func Password(password string) error {
	return requiredMin("password", password, 6)
}

// Address checks the address payload. Zip must be numeric.
func Address(address, locality, city, state, zip string) error {
	if err := required("address", address); err != nil {
		return err
	}
	if err := required("locality", locality); err != nil {
		return err
	}
	if err := required("city", city); err != nil {
		return err
	}
	if err := required("state", state); err != nil {
		return err
	}
	if err := required("zip", zip); err != nil {
		return err
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return errors.New("zip must be a number")
		}
	}
	return nil
}

// Product checks the product-creation payload.
func Product(title string, price float64, quantity int, description, category, image1 string) error {
	if err := requiredMin("title", title, 6); err != nil {
		return err
	}
	if price < 2 {
		return errors.New("price must be greater than or equal to 2")
	}
	if quantity < 1 {
		return errors.New("quantity must be greater than or equal to 1")
	}
	if err := requiredMin("description", description, 10); err != nil {
		return err
	}
	if err := required("category", category); err != nil {
		return err
	}
	return required("image1", image1)
}

func required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func requiredMin(field, value string, min int) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if utf8.RuneCountInString(value) < min {
		return fmt.Errorf("%s must be at least %d characters long", field, min)
	}
	return nil
}
