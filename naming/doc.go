// Package naming derives the identifier variants used by the scaffold
// templates from a single kebab-case slug.
//
// # Variants
//
// Given the slug "user-profile":
//
//	Slug                    user-profile
//	CamelName               userProfile
//	ClassName               UserProfile
//	ConstantName            USER_PROFILE
//	HumanPhrase             user profile
//	HumanPhraseCapitalized  User profile
//	UpperPhrase             USER PROFILE
//	PluralResource          user-profiles
//
// # Limitations
//
// The rules are deliberately naive and ASCII only. Pluralization appends
// "s" unless the slug already ends in "s", so "category" becomes
// "categorys". A slug starting with a digit is accepted even though the
// resulting class name is not a conventional identifier.
//
// # Example Usage
//
//	b, err := naming.Derive("user-profile")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(b.ClassName) // UserProfile
package naming
