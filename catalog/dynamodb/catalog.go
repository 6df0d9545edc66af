// Package dynamodb stores the run catalog in an Amazon DynamoDB table.
//
// Table schema:
//   - Partition key: id (string), the run ID
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name lloyd-runs \
//	  --attribute-definitions AttributeName=id,AttributeType=S \
//	  --key-schema AttributeName=id,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/lloyd/catalog"
)

// Client is the subset of the DynamoDB API used by Catalog.
// *dynamodb.Client satisfies it.
type Client interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

const (
	attrID         = "id"
	attrK          = "k"
	attrPoints     = "points"
	attrIterations = "iterations"
	attrInertia    = "inertia"
	attrSilhouette = "silhouette"
	attrCreatedAt  = "created_at"
	attrBlob       = "blob"
)

var errInvalidItem = errors.New("dynamodb: invalid catalog item")

// Catalog implements catalog.Catalog on a DynamoDB table.
type Catalog struct {
	client    Client
	tableName string
}

var _ catalog.Catalog = (*Catalog)(nil)

// New creates a Catalog backed by tableName.
func New(client Client, tableName string) *Catalog {
	return &Catalog{client: client, tableName: tableName}
}

// Put implements catalog.Catalog.
func (c *Catalog) Put(ctx context.Context, e catalog.Entry) error {
	_, err := c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item:      marshalEntry(e),
	})
	if err != nil {
		return fmt.Errorf("failed to put catalog entry %s: %w", e.ID, err)
	}
	return nil
}

// Get implements catalog.Catalog.
func (c *Catalog) Get(ctx context.Context, id string) (catalog.Entry, error) {
	resp, err := c.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(c.tableName),
		Key:            key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return catalog.Entry{}, fmt.Errorf("failed to get catalog entry %s: %w", id, err)
	}
	if len(resp.Item) == 0 {
		return catalog.Entry{}, catalog.ErrNotFound
	}
	return unmarshalEntry(resp.Item)
}

// List implements catalog.Catalog. It scans the whole table.
func (c *Catalog) List(ctx context.Context) ([]catalog.Entry, error) {
	var out []catalog.Entry

	p := dynamodb.NewScanPaginator(c.client, &dynamodb.ScanInput{
		TableName: aws.String(c.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog: %w", err)
		}
		for _, item := range page.Items {
			e, err := unmarshalEntry(item)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	}

	catalog.SortNewestFirst(out)
	return out, nil
}

// Delete implements catalog.Catalog.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	_, err := c.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(c.tableName),
		Key:       key(id),
	})
	if err != nil {
		return fmt.Errorf("failed to delete catalog entry %s: %w", id, err)
	}
	return nil
}

func key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrID: &types.AttributeValueMemberS{Value: id},
	}
}

func marshalEntry(e catalog.Entry) map[string]types.AttributeValue {
	item := map[string]types.AttributeValue{
		attrID:         &types.AttributeValueMemberS{Value: e.ID},
		attrK:          &types.AttributeValueMemberN{Value: strconv.Itoa(e.K)},
		attrPoints:     &types.AttributeValueMemberN{Value: strconv.Itoa(e.Points)},
		attrIterations: &types.AttributeValueMemberN{Value: strconv.Itoa(e.Iterations)},
		attrInertia:    &types.AttributeValueMemberN{Value: formatFloat(e.Inertia)},
		attrCreatedAt:  &types.AttributeValueMemberS{Value: e.CreatedAt.UTC().Format(time.RFC3339Nano)},
		attrBlob:       &types.AttributeValueMemberS{Value: e.Blob},
	}
	if e.Silhouette != nil {
		item[attrSilhouette] = &types.AttributeValueMemberN{Value: formatFloat(*e.Silhouette)}
	}
	return item
}

func unmarshalEntry(item map[string]types.AttributeValue) (catalog.Entry, error) {
	var (
		e   catalog.Entry
		err error
	)

	if e.ID, err = stringAttr(item, attrID); err != nil {
		return catalog.Entry{}, err
	}
	if e.Blob, err = stringAttr(item, attrBlob); err != nil {
		return catalog.Entry{}, err
	}
	if e.K, err = intAttr(item, attrK); err != nil {
		return catalog.Entry{}, err
	}
	if e.Points, err = intAttr(item, attrPoints); err != nil {
		return catalog.Entry{}, err
	}
	if e.Iterations, err = intAttr(item, attrIterations); err != nil {
		return catalog.Entry{}, err
	}
	if e.Inertia, err = floatAttr(item, attrInertia); err != nil {
		return catalog.Entry{}, err
	}
	if _, ok := item[attrSilhouette]; ok {
		s, err := floatAttr(item, attrSilhouette)
		if err != nil {
			return catalog.Entry{}, err
		}
		e.Silhouette = &s
	}

	created, err := stringAttr(item, attrCreatedAt)
	if err != nil {
		return catalog.Entry{}, err
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return catalog.Entry{}, fmt.Errorf("%w: %s: %w", errInvalidItem, attrCreatedAt, err)
	}

	return e, nil
}

func stringAttr(item map[string]types.AttributeValue, name string) (string, error) {
	v, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("%w: missing %s", errInvalidItem, name)
	}
	return v.Value, nil
}

func numberAttr(item map[string]types.AttributeValue, name string) (string, error) {
	v, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("%w: missing %s", errInvalidItem, name)
	}
	return v.Value, nil
}

func intAttr(item map[string]types.AttributeValue, name string) (int, error) {
	s, err := numberAttr(item, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidItem, name, err)
	}
	return n, nil
}

func floatAttr(item map[string]types.AttributeValue, name string) (float64, error) {
	s, err := numberAttr(item, name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidItem, name, err)
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
