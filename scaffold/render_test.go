package scaffold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dunsteer/ngrx-essentials-generator/naming"
)

func TestRender_Placeholders(t *testing.T) {
	b, err := naming.Derive("user-profile")
	require.NoError(t, err)

	tests := []struct {
		kind TemplateKind
		want []string
	}{
		{Action, []string{
			"export const FEATURE_KEY = 'user-profile';",
			"'[USER PROFILE] Fetch user profile'",
			"'[USER PROFILE] Fetch user profile success'",
			"export type UserProfileAction = Fetch | FetchSuccess;",
		}},
		{Reducer, []string{
			"import * as UserProfileActions from './user-profile.actions';",
			"export interface UserProfileState",
			"loadingUserProfile: boolean;",
			"export function userProfileReducer(",
		}},
		{Effect, []string{
			"import * as UserProfileActions from './user-profile.actions';",
			"import { UserProfileService } from './user-profile.service';",
			"export class UserProfileEffects",
			"private _userProfiles: UserProfileService",
			"'USER_PROFILE_FETCH_FAILURE'",
			"'User profile not fetched.'",
		}},
		{Service, []string{
			"export class UserProfileService",
			"/api/user-profiles`",
		}},
		{Module, []string{
			"import { UserProfileComponent } from './user-profile.component';",
			"declarations: [UserProfileComponent]",
			"export class UserProfileModule {}",
		}},
		{ComponentScript, []string{
			"selector: 'app-user-profile'",
			"templateUrl: './user-profile.component.html'",
			"styleUrls: ['./user-profile.component.scss']",
			"export class UserProfileComponent {}",
		}},
		{ComponentMarkup, []string{
			"<p>user-profile works!</p>",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			out, err := Render(tt.kind, b)
			require.NoError(t, err)

			content := string(out)
			for _, w := range tt.want {
				assert.Contains(t, content, w)
			}
			assert.NotContains(t, content, "{{")
			assert.NotContains(t, content, "<no value>")
		})
	}
}

func TestRender_ComponentStyleIsEmpty(t *testing.T) {
	b, err := naming.Derive("user-profile")
	require.NoError(t, err)

	out, err := Render(ComponentStyle, b)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestRender_PluralResourceNoDoubleS(t *testing.T) {
	b, err := naming.Derive("posts")
	require.NoError(t, err)

	out, err := Render(Service, b)
	require.NoError(t, err)
	assert.Contains(t, string(out), "/api/posts`")
	assert.NotContains(t, string(out), "postss")

	// The effects field always appends "s" to the camel name.
	effects, err := Render(Effect, b)
	require.NoError(t, err)
	assert.Contains(t, string(effects), "private _postss: PostsService")
}

func TestRender_MultiWordSlugAcrossKinds(t *testing.T) {
	b, err := naming.Derive("order-line-item")
	require.NoError(t, err)

	reducer, err := Render(Reducer, b)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(reducer), "import * as OrderLineItemActions"), "reducer must start with its import")
	assert.Contains(t, string(reducer), "export function orderLineItemReducer(")

	effects, err := Render(Effect, b)
	require.NoError(t, err)
	assert.Contains(t, string(effects), "private _orderLineItems: OrderLineItemService")
	assert.Contains(t, string(effects), "'ORDER_LINE_ITEM_FETCH_FAILURE'")
	assert.Contains(t, string(effects), "'Order line item not fetched.'")

	actions, err := Render(Action, b)
	require.NoError(t, err)
	assert.Contains(t, string(actions), "'[ORDER LINE ITEM] Fetch order line item'")
}

func TestRender_UnknownKind(t *testing.T) {
	_, err := Render(TemplateKind(99), naming.Bundle{Slug: "x"})
	assert.Error(t, err)
}
