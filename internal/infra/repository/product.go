package repository

import (
	"context"
	"errors"

	"webshopper/internal/domain/catalog"
	"webshopper/internal/domain/unit"
	"webshopper/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

type productRow struct {
	ProductID          string
	UserID             uuid.UUID
	UPC                string
	Description        string
	ContainerQuantity  float64
	ContainerUnit      string
	ContainerDimension string
	AltQuantity        *float64
	AltUnit            *string
	AltDimension       *string
}

func (row productRow) toDomain() *catalog.Product {
	container := catalog.ContainerSpec{
		Quantity:  row.ContainerQuantity,
		Unit:      unit.Unit(row.ContainerUnit),
		Dimension: unit.Dimension(row.ContainerDimension),
	}
	var alternate *catalog.ContainerSpec
	if row.AltQuantity != nil && row.AltUnit != nil && row.AltDimension != nil {
		alternate = &catalog.ContainerSpec{
			Quantity:  *row.AltQuantity,
			Unit:      unit.Unit(*row.AltUnit),
			Dimension: unit.Dimension(*row.AltDimension),
		}
	}
	return catalog.Reconstruct(row.ProductID, row.UserID, row.UPC, row.Description, container, alternate)
}

func scanProduct(row pgx.Row) (*catalog.Product, error) {
	var pr productRow
	err := row.Scan(
		&pr.ProductID, &pr.UserID, &pr.UPC, &pr.Description,
		&pr.ContainerQuantity, &pr.ContainerUnit, &pr.ContainerDimension,
		&pr.AltQuantity, &pr.AltUnit, &pr.AltDimension,
	)
	if err != nil {
		return nil, err
	}
	return pr.toDomain(), nil
}

const productColumns = `product_id, user_id, upc, description,
	container_quantity, container_unit, container_dimension,
	alt_quantity, alt_unit, alt_dimension`

// Save upserts so add and edit share one code path.
func (r *ProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	var altQty *float64
	var altUnit, altDim *string
	if alt := p.Alternate(); alt != nil {
		q := alt.Quantity
		u := string(alt.Unit)
		d := string(alt.Dimension)
		altQty, altUnit, altDim = &q, &u, &d
	}

	container := p.Container()
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (product_id, user_id, upc, description,
			container_quantity, container_unit, container_dimension,
			alt_quantity, alt_unit, alt_dimension)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id, product_id) DO UPDATE SET
			upc = EXCLUDED.upc,
			description = EXCLUDED.description,
			container_quantity = EXCLUDED.container_quantity,
			container_unit = EXCLUDED.container_unit,
			container_dimension = EXCLUDED.container_dimension,
			alt_quantity = EXCLUDED.alt_quantity,
			alt_unit = EXCLUDED.alt_unit,
			alt_dimension = EXCLUDED.alt_dimension`,
		p.ProductID(), p.UserID(), p.UPC(), p.Description(),
		container.Quantity, string(container.Unit), string(container.Dimension),
		altQty, altUnit, altDim,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save product", err)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, userID uuid.UUID, productID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM products WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

// GetMany loads the referenced products keyed by product id. Missing ids are
// simply absent from the map; the order engine decides whether that is fatal.
func (r *ProductRepository) GetMany(ctx context.Context, userID uuid.UUID, productIDs []string) (map[string]*catalog.Product, error) {
	if len(productIDs) == 0 {
		return map[string]*catalog.Product{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE user_id = $1 AND product_id = ANY($2)`,
		userID, productIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load products", err)
	}
	defer rows.Close()

	products := make(map[string]*catalog.Product, len(productIDs))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		products[p.ProductID()] = p
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}
	return products, nil
}

func (r *ProductRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*catalog.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE user_id = $1 ORDER BY description`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var products []*catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, userID uuid.UUID, productID string) (*catalog.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return p, nil
}
