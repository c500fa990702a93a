package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

const productColumns = `id, owner_id, url, name, current_price, original_price,
	currency, image_url, seller_name, rating, review_count, platform_domain,
	deal_score, created_at, updated_at`

// Tracked product queries.
const (
	queryUpsertTrackedProduct = `
		INSERT INTO tracked_products (
			owner_id, url, name, current_price, original_price,
			currency, image_url, seller_name, rating, review_count,
			platform_domain, deal_score, created_at, updated_at
		) VALUES (
			@owner_id, @url, @name, @current_price, @original_price,
			@currency, @image_url, @seller_name, @rating, @review_count,
			@platform_domain, @deal_score, now(), now()
		)
		ON CONFLICT (owner_id, url) DO UPDATE SET
			name = EXCLUDED.name,
			current_price = EXCLUDED.current_price,
			original_price = EXCLUDED.original_price,
			currency = EXCLUDED.currency,
			image_url = EXCLUDED.image_url,
			seller_name = EXCLUDED.seller_name,
			rating = EXCLUDED.rating,
			review_count = EXCLUDED.review_count,
			platform_domain = EXCLUDED.platform_domain,
			deal_score = EXCLUDED.deal_score,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetTrackedProduct = `SELECT ` + productColumns + `
		FROM tracked_products
		WHERE id = $1 AND owner_id = $2`

	queryGetTrackedProductByURL = `SELECT ` + productColumns + `
		FROM tracked_products
		WHERE owner_id = $1 AND url = $2`

	queryListAllTrackedProducts = `SELECT ` + productColumns + `
		FROM tracked_products
		ORDER BY updated_at ASC`

	queryDeleteTrackedProduct = `
		DELETE FROM tracked_products
		WHERE id = $1 AND owner_id = $2`
)

// Price history queries.
const (
	queryAppendPriceHistory = `
		INSERT INTO price_history (tracked_product_id, price, currency, observed_at)
		VALUES ($1, $2, $3, COALESCE($4, now()))
		RETURNING id, observed_at`

	queryListPriceHistory = `
		SELECT id, tracked_product_id, price, currency, observed_at
		FROM price_history
		WHERE tracked_product_id = $1
		ORDER BY observed_at ASC, id ASC`
)
