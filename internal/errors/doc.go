// Package errors provides the structured error type used across rpg-forge.
//
// Errors carry a Code, a message, an optional cause and metadata:
//
//	err := errors.NotFoundf("item %s not found", itemID)
//	err := errors.FailedPrecondition("orb does not match item rarity").
//	    WithMeta("orb", orb.Kind.String()).
//	    WithMeta("rarity", item.Rarity.String())
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to persist item")
//	}
//
// Checking:
//
//	if errors.IsFailedPrecondition(err) {
//	    // rejected craft, nothing was mutated
//	}
//
// Constructors validate their dependencies with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.World == nil {
//	    vb.RequiredField("World")
//	}
//	return vb.Build()
package errors
