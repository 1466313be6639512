package naming

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		slug string
		want Bundle
	}{
		{
			slug: "user-profile",
			want: Bundle{
				Slug:                   "user-profile",
				CamelName:              "userProfile",
				ClassName:              "UserProfile",
				ConstantName:           "USER_PROFILE",
				HumanPhrase:            "user profile",
				HumanPhraseCapitalized: "User profile",
				UpperPhrase:            "USER PROFILE",
				PluralResource:         "user-profiles",
			},
		},
		{
			slug: "posts",
			want: Bundle{
				Slug:                   "posts",
				CamelName:              "posts",
				ClassName:              "Posts",
				ConstantName:           "POSTS",
				HumanPhrase:            "posts",
				HumanPhraseCapitalized: "Posts",
				UpperPhrase:            "POSTS",
				PluralResource:         "posts",
			},
		},
		{
			slug: "category",
			want: Bundle{
				Slug:                   "category",
				CamelName:              "category",
				ClassName:              "Category",
				ConstantName:           "CATEGORY",
				HumanPhrase:            "category",
				HumanPhraseCapitalized: "Category",
				UpperPhrase:            "CATEGORY",
				PluralResource:         "categorys",
			},
		},
		{
			slug: "shopping-cart-item",
			want: Bundle{
				Slug:                   "shopping-cart-item",
				CamelName:              "shoppingCartItem",
				ClassName:              "ShoppingCartItem",
				ConstantName:           "SHOPPING_CART_ITEM",
				HumanPhrase:            "shopping cart item",
				HumanPhraseCapitalized: "Shopping cart item",
				UpperPhrase:            "SHOPPING CART ITEM",
				PluralResource:         "shopping-cart-items",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			got, err := Derive(tt.slug)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerive_EmptySlug(t *testing.T) {
	_, err := Derive("")
	assert.ErrorIs(t, err, ErrEmptySlug)
}

func TestCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"user", "user"},
		{"user-profile", "userProfile"},
		{"top-10-list", "top-10List"},
		{"a--b", "a-B"},
		{"trailing-", "trailing-"},
		{"-leading", "Leading"},
		{"already-Upper", "alreadyUpper"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Camel(tt.in))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "User", Capitalize("user"))
	assert.Equal(t, "User", Capitalize("User"))
	assert.Equal(t, "9lives", Capitalize("9lives"))
	assert.Equal(t, "", Capitalize(""))
}

func TestUpper_ASCIIOnly(t *testing.T) {
	assert.Equal(t, "CAFé", Upper("café"))
	assert.Equal(t, "A-B_C 1", Upper("a-b_c 1"))
}

func TestPlural(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"user", "users"},
		{"posts", "posts"},
		{"bus", "bus"},
		{"category", "categorys"},
		{"person", "persons"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Plural(tt.in))
		})
	}
}

func TestDerive_ClassNameProperty(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789-"
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(16)
		buf := make([]byte, n)
		buf[0] = alphabet[rng.Intn(26)]
		for j := 1; j < n; j++ {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		slug := string(buf)

		b, err := Derive(slug)
		require.NoError(t, err, slug)

		assert.True(t, b.ClassName[0] >= 'A' && b.ClassName[0] <= 'Z', "class name %q of %q", b.ClassName, slug)
		assert.Equal(t, b.CamelName[1:], b.ClassName[1:], slug)
		assert.Equal(t, len(b.Slug), len(b.HumanPhrase), slug)
		assert.Equal(t, len(b.Slug), len(b.ConstantName), slug)
	}
}
