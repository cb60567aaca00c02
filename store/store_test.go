package store_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaucodes/sokomart-api/models"
	"github.com/kamaucodes/sokomart-api/storage"
	"github.com/kamaucodes/sokomart-api/store"
)

// newStore loads a store over a fresh in-memory boundary with an empty
// catalog, so tests start from a blank slate instead of the sample data.
func newStore(t *testing.T) (*store.Store, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Put(storage.KeyProducts, []byte("[]")))
	s := store.New(kv)
	s.Load()
	return s, kv
}

// newSeededStore loads a store that starts with the sample catalog.
func newSeededStore(t *testing.T) (*store.Store, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	s := store.New(kv)
	s.Load()
	return s, kv
}

func listing(title string) models.ProductPayload {
	return models.ProductPayload{
		Title:       title,
		Description: "A " + title + " in great condition.",
		Category:    "electronics",
		Price:       25.00,
	}
}

func login(t *testing.T, s *store.Store) models.User {
	t.Helper()
	user, err := s.Login("seller@example.com", "hunter2")
	require.NoError(t, err)
	return user
}

func TestLogin(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		s, _ := newStore(t)

		_, err := s.Login("", "secret")
		var validationErr *store.ValidationError
		require.ErrorAs(t, err, &validationErr)

		_, err = s.Login("a@b.com", "")
		require.ErrorAs(t, err, &validationErr)

		_, active := s.CurrentUser()
		assert.False(t, active)
	})

	t.Run("placeholder identity", func(t *testing.T) {
		s, kv := newStore(t)

		user, err := s.Login("jane.doe@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "user1", user.ID)
		assert.Equal(t, "jane.doe", user.Username)
		assert.Equal(t, "jane.doe@example.com", user.Email)

		raw, ok, err := kv.Get(storage.KeyCurrentUser)
		require.NoError(t, err)
		require.True(t, ok)
		var persisted models.User
		require.NoError(t, json.Unmarshal(raw, &persisted))
		assert.Equal(t, user, persisted)
	})
}

func TestSignup(t *testing.T) {
	t.Run("password mismatch", func(t *testing.T) {
		s, _ := newStore(t)
		_, err := s.Signup(models.SignupData{
			Email:           "a@b.com",
			Username:        "ab",
			Password:        "one",
			ConfirmPassword: "two",
		})
		var validationErr *store.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("missing fields", func(t *testing.T) {
		s, _ := newStore(t)
		_, err := s.Signup(models.SignupData{Email: "a@b.com"})
		var validationErr *store.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("fresh id per signup", func(t *testing.T) {
		s, _ := newStore(t)
		first, err := s.Signup(models.SignupData{
			Email: "a@b.com", Username: "ab", Password: "pw", ConfirmPassword: "pw",
		})
		require.NoError(t, err)
		second, err := s.Signup(models.SignupData{
			Email: "c@d.com", Username: "cd", Password: "pw", ConfirmPassword: "pw",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.NotEqual(t, "user1", first.ID)
	})
}

func TestLogout(t *testing.T) {
	s, kv := newStore(t)
	login(t, s)

	s.Logout()

	_, active := s.CurrentUser()
	assert.False(t, active)
	_, ok, err := kv.Get(storage.KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, ok)

	// No error conditions: logging out twice is fine.
	s.Logout()
}

func TestUpdateProfile(t *testing.T) {
	t.Run("no active session", func(t *testing.T) {
		s, _ := newStore(t)
		_, err := s.UpdateProfile(models.ProfileUpdate{Username: "ghost"})
		var preconditionErr *store.PreconditionError
		require.ErrorAs(t, err, &preconditionErr)
	})

	t.Run("mutates in place and persists", func(t *testing.T) {
		s, kv := newStore(t)
		login(t, s)

		updated, err := s.UpdateProfile(models.ProfileUpdate{
			Username: "trader-jane",
			Email:    "jane@market.com",
			Phone:    "0712345678",
			Address:  "14 Moi Avenue",
		})
		require.NoError(t, err)
		assert.Equal(t, "user1", updated.ID)
		assert.Equal(t, "trader-jane", updated.Username)
		assert.Equal(t, "0712345678", updated.Phone)

		current, active := s.CurrentUser()
		require.True(t, active)
		assert.Equal(t, updated, current)

		raw, ok, err := kv.Get(storage.KeyCurrentUser)
		require.NoError(t, err)
		require.True(t, ok)
		var persisted models.User
		require.NoError(t, json.Unmarshal(raw, &persisted))
		assert.Equal(t, updated, persisted)
	})
}

func TestAddProduct(t *testing.T) {
	t.Run("requires an active seller", func(t *testing.T) {
		s, _ := newStore(t)
		_, err := s.AddProduct(listing("Lamp"))
		var preconditionErr *store.PreconditionError
		require.ErrorAs(t, err, &preconditionErr)
	})

	t.Run("validation", func(t *testing.T) {
		s, _ := newStore(t)
		login(t, s)
		var validationErr *store.ValidationError

		payload := listing("Lamp")
		payload.Title = ""
		_, err := s.AddProduct(payload)
		require.ErrorAs(t, err, &validationErr)

		payload = listing("Lamp")
		payload.Category = "vehicles"
		_, err = s.AddProduct(payload)
		require.ErrorAs(t, err, &validationErr)

		payload = listing("Lamp")
		payload.Price = 0
		_, err = s.AddProduct(payload)
		require.ErrorAs(t, err, &validationErr)

		payload = listing("Lamp")
		payload.Price = -5
		_, err = s.AddProduct(payload)
		require.ErrorAs(t, err, &validationErr)

		assert.Empty(t, s.Products())
	})

	t.Run("unique monotonic ids, seller stamped", func(t *testing.T) {
		s, _ := newStore(t)
		user := login(t, s)

		seen := map[int64]bool{}
		var last int64
		for _, title := range []string{"Lamp", "Desk", "Chair", "Mirror"} {
			product, err := s.AddProduct(listing(title))
			require.NoError(t, err)
			assert.False(t, seen[product.ID], "id %d reused", product.ID)
			seen[product.ID] = true
			assert.Greater(t, product.ID, last)
			last = product.ID
			assert.Equal(t, user.ID, product.SellerID)
			assert.Equal(t, user.Username, product.SellerName)
		}
	})
}

func TestEditProduct(t *testing.T) {
	s, _ := newStore(t)
	login(t, s)

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.EditProduct(42, listing("Lamp"))
		var notFoundErr *store.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("overwrites fields, preserves identity", func(t *testing.T) {
		created, err := s.AddProduct(listing("Lamp"))
		require.NoError(t, err)

		edited, err := s.EditProduct(created.ID, models.ProductPayload{
			Title:       "Brass Lamp",
			Description: "Restored brass lamp.",
			Category:    "furniture",
			Price:       60,
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, edited.ID)
		assert.Equal(t, created.SellerID, edited.SellerID)
		assert.Equal(t, created.SellerName, edited.SellerName)
		assert.Equal(t, "Brass Lamp", edited.Title)
		assert.Equal(t, "furniture", edited.Category)
		assert.Equal(t, 60.0, edited.Price)

		stored, err := s.GetProduct(created.ID)
		require.NoError(t, err)
		assert.Equal(t, edited, stored)
	})
}

func TestDeleteProductTwice(t *testing.T) {
	s, _ := newStore(t)
	login(t, s)

	product, err := s.AddProduct(listing("Lamp"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(product.ID))

	err = s.DeleteProduct(product.ID)
	var notFoundErr *store.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestSearch(t *testing.T) {
	s, _ := newSeededStore(t)

	t.Run("empty term matches all in order", func(t *testing.T) {
		results := slices.Collect(s.Search(""))
		require.Len(t, results, 5)
		for i, product := range results {
			assert.Equal(t, int64(i+1), product.ID)
		}
	})

	t.Run("case-insensitive match on title or description", func(t *testing.T) {
		results := slices.Collect(s.Search("CAMERA"))
		require.Len(t, results, 1)
		assert.Equal(t, "Vintage Camera", results[0].Title)

		// "condition" only appears in descriptions.
		results = slices.Collect(s.Search("condition"))
		assert.Len(t, results, 2)
	})

	t.Run("no match yields empty sequence", func(t *testing.T) {
		assert.Empty(t, slices.Collect(s.Search("submarine")))
	})

	t.Run("restartable", func(t *testing.T) {
		seq := s.Search("o")
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		assert.Equal(t, first, second)
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		var collected []models.Product
		for product := range s.Search("") {
			collected = append(collected, product)
			if len(collected) == 2 {
				break
			}
		}
		assert.Len(t, collected, 2)
	})
}

func TestFilterByCategory(t *testing.T) {
	s, _ := newSeededStore(t)

	t.Run("exact match, order preserved", func(t *testing.T) {
		results := slices.Collect(s.FilterByCategory("furniture"))
		require.Len(t, results, 1)
		assert.Equal(t, "Wooden Bookshelf", results[0].Title)
	})

	t.Run("all sentinel disables filtering", func(t *testing.T) {
		results := slices.Collect(s.FilterByCategory(models.CategoryAll))
		assert.Len(t, results, 5)
	})

	t.Run("unknown category yields nothing", func(t *testing.T) {
		assert.Empty(t, slices.Collect(s.FilterByCategory("vehicles")))
	})
}

func TestListBySeller(t *testing.T) {
	s, _ := newSeededStore(t)

	results := slices.Collect(s.ListBySeller("user1"))
	require.Len(t, results, 2)
	assert.Equal(t, "Vintage Camera", results[0].Title)
	assert.Equal(t, "Programming Books", results[1].Title)

	assert.Empty(t, slices.Collect(s.ListBySeller("nobody")))
}

func TestAddToCart(t *testing.T) {
	t.Run("unknown product", func(t *testing.T) {
		s, _ := newStore(t)
		_, err := s.AddToCart(99)
		var notFoundErr *store.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("same product increments quantity, never a second line", func(t *testing.T) {
		s, _ := newSeededStore(t)

		line, err := s.AddToCart(1)
		require.NoError(t, err)
		assert.Equal(t, 1, line.Quantity)

		line, err = s.AddToCart(1)
		require.NoError(t, err)
		assert.Equal(t, 2, line.Quantity)

		lines := s.CartLines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(1), lines[0].ID)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("line copies product fields at add time", func(t *testing.T) {
		s, _ := newSeededStore(t)
		login(t, s)

		_, err := s.AddToCart(1)
		require.NoError(t, err)

		_, err = s.EditProduct(1, models.ProductPayload{
			Title:       "Broken Camera",
			Description: "For parts.",
			Category:    "electronics",
			Price:       10,
		})
		require.NoError(t, err)

		lines := s.CartLines()
		require.Len(t, lines, 1)
		assert.Equal(t, "Vintage Camera", lines[0].Title)
		assert.Equal(t, 150.0, lines[0].Price)
	})
}

func TestRemoveFromCart(t *testing.T) {
	s, _ := newSeededStore(t)

	_, err := s.AddToCart(1)
	require.NoError(t, err)
	_, err = s.AddToCart(1)
	require.NoError(t, err)
	_, err = s.AddToCart(2)
	require.NoError(t, err)

	t.Run("drops the whole line regardless of quantity", func(t *testing.T) {
		require.NoError(t, s.RemoveFromCart(1))
		lines := s.CartLines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(2), lines[0].ID)
	})

	t.Run("absent id is a silent no-op", func(t *testing.T) {
		before := s.CartLines()
		require.NoError(t, s.RemoveFromCart(999))
		assert.Equal(t, before, s.CartLines())
	})
}

func TestCartTotals(t *testing.T) {
	s, _ := newSeededStore(t)

	assert.Equal(t, 0.0, s.CartTotal())
	assert.Equal(t, 0, s.CartItemCount())

	_, err := s.AddToCart(1) // 150.00
	require.NoError(t, err)
	_, err = s.AddToCart(1)
	require.NoError(t, err)
	_, err = s.AddToCart(4) // 45.00
	require.NoError(t, err)

	assert.InDelta(t, 345.0, s.CartTotal(), 1e-9)
	assert.Equal(t, 3, s.CartItemCount())
}

func TestCheckout(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		s, _ := newSeededStore(t)
		_, err := s.Checkout()
		var preconditionErr *store.PreconditionError
		require.ErrorAs(t, err, &preconditionErr)
		assert.Empty(t, s.Purchases())
	})

	t.Run("camera scenario", func(t *testing.T) {
		s, _ := newSeededStore(t)

		_, err := s.AddToCart(1)
		require.NoError(t, err)
		_, err = s.AddToCart(1)
		require.NoError(t, err)

		wantTotal := s.CartTotal()
		purchase, err := s.Checkout()
		require.NoError(t, err)

		assert.NotEmpty(t, purchase.ID)
		assert.False(t, purchase.Date.IsZero())
		assert.InDelta(t, 300.0, purchase.Total, 1e-9)
		assert.Equal(t, wantTotal, purchase.Total)
		require.Len(t, purchase.Items, 1)
		assert.Equal(t, int64(1), purchase.Items[0].ID)
		assert.Equal(t, 2, purchase.Items[0].Quantity)

		assert.Empty(t, s.CartLines())
		assert.Equal(t, 0, s.CartItemCount())
		require.Len(t, s.Purchases(), 1)

		_, err = s.Checkout()
		var preconditionErr *store.PreconditionError
		require.ErrorAs(t, err, &preconditionErr)
		assert.Len(t, s.Purchases(), 1)
	})

	t.Run("purchase snapshot survives catalog deletion", func(t *testing.T) {
		s, _ := newSeededStore(t)
		login(t, s)

		_, err := s.AddToCart(3)
		require.NoError(t, err)
		_, err = s.Checkout()
		require.NoError(t, err)

		require.NoError(t, s.DeleteProduct(3))

		purchases := s.Purchases()
		require.Len(t, purchases, 1)
		require.Len(t, purchases[0].Items, 1)
		assert.Equal(t, "Wooden Bookshelf", purchases[0].Items[0].Title)
	})
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := store.New(kv)
	s.Load()

	user := login(t, s)
	product, err := s.AddProduct(models.ProductPayload{
		Title:       "Clay Pot",
		Description: "Hand thrown clay pot.",
		Category:    "furniture",
		Price:       30,
	})
	require.NoError(t, err)

	_, err = s.AddToCart(product.ID)
	require.NoError(t, err)
	purchase, err := s.Checkout()
	require.NoError(t, err)

	_, err = s.AddToCart(1)
	require.NoError(t, err)

	// A second store over the same boundary sees the same world.
	reloaded := store.New(kv)
	reloaded.Load()

	current, active := reloaded.CurrentUser()
	require.True(t, active)
	assert.Equal(t, user, current)

	assert.Equal(t, s.Products(), reloaded.Products())
	assert.Equal(t, s.CartLines(), reloaded.CartLines())

	purchases := reloaded.Purchases()
	require.Len(t, purchases, 1)
	assert.Equal(t, purchase.ID, purchases[0].ID)
	assert.Equal(t, purchase.Total, purchases[0].Total)
}

func TestProductIDsNotReusedAfterReload(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := store.New(kv)
	s.Load()
	login(t, s)

	product, err := s.AddProduct(listing("Lamp"))
	require.NoError(t, err)
	_, err = s.AddToCart(product.ID)
	require.NoError(t, err)
	require.NoError(t, s.DeleteProduct(product.ID))

	reloaded := store.New(kv)
	reloaded.Load()
	_, err = reloaded.Login("seller@example.com", "pw")
	require.NoError(t, err)

	next, err := reloaded.AddProduct(listing("Desk"))
	require.NoError(t, err)
	assert.Greater(t, next.ID, product.ID, "deleted id still referenced by the cart must not be reassigned")
}

func TestLoadDefaults(t *testing.T) {
	t.Run("absent keys seed the sample catalog", func(t *testing.T) {
		s, _ := newSeededStore(t)

		products := s.Products()
		require.Len(t, products, 5)
		assert.Equal(t, "Vintage Camera", products[0].Title)
		assert.Empty(t, s.CartLines())
		assert.Empty(t, s.Purchases())
		_, active := s.CurrentUser()
		assert.False(t, active)

		login(t, s)
		product, err := s.AddProduct(listing("Lamp"))
		require.NoError(t, err)
		assert.Equal(t, int64(6), product.ID)
	})

	t.Run("malformed values are treated as absent", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		for _, key := range []string{
			storage.KeyCurrentUser,
			storage.KeyProducts,
			storage.KeyCart,
			storage.KeyPurchases,
		} {
			require.NoError(t, kv.Put(key, []byte("{not json")))
		}

		s := store.New(kv)
		s.Load()

		assert.Len(t, s.Products(), 5)
		assert.Empty(t, s.CartLines())
		assert.Empty(t, s.Purchases())
		_, active := s.CurrentUser()
		assert.False(t, active)
	})
}
