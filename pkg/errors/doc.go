// Package errors provides structured error types for programmatic error
// handling across the conversion core and its CLI/API surfaces.
//
// Every failure in the library is classified with an ErrorCode so callers
// can react without string matching:
//
//	ing, err := ingredient.Lookup("nutella")
//	if err != nil {
//	    if errors.HasCode(err, errors.ErrCodeUnknownIngredient) {
//	        // suggest registered ingredient names
//	    }
//	}
package errors
