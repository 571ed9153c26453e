package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrCollectionEmpty  = errors.New("the collection of an expense must not be empty")
	ErrPaymentInvalid   = errors.New("the payment must be one of 'cash' or 'card'")
)
