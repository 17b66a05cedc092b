package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/domain/lifecycle"
	"instant_offer/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultQuotesTableName = "quotes"
	quotesAccessTokenIndex = "access_token-index"
	quotesStatusIndex      = "status-created_at-index"
)

// DynamoAPI is the subset of the DynamoDB client the repository uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//   - GSI: access_token-index (PK: access_token)
//   - GSI: status-created_at-index (PK: status, SK: created_at)
//
// Save replaces the whole item guarded by the version attribute, so status,
// pickup, contact and history always change together.
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuotesTableName
	}
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#quote_id)"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, interfaces.ErrDuplicateQuoteID
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, quoteID string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}
	return unmarshalQuote(out.Item)
}

// GetByAccessToken reads through the GSI, which is eventually consistent.
// Mutations re-read by id before acting.
func (r *QuoteDynamoRepository) GetByAccessToken(ctx context.Context, token string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesAccessTokenIndex),
		KeyConditionExpression: aws.String("access_token = :token"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}
	return unmarshalQuote(out.Items[0])
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error) {
	q.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#quote_id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
			"#version":  "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, interfaces.ErrVersionConflict
		}
		return entities.Quote{}, err
	}
	return q, nil
}

// List queries the status index when a status is given and scans otherwise.
// Expiry bounds are evaluated server side so the limit applies to matching
// items only. Results are newest first.
func (r *QuoteDynamoRepository) List(ctx context.Context, filter interfaces.QuoteFilter) ([]entities.Quote, error) {
	names, values, filterExpr := createdRangeFilter(filter)
	filterExpr = andExpr(filterExpr, expiryFilter(filter, names, values))

	var pages pager
	if filter.Status != "" {
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		in := &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(quotesStatusIndex),
			KeyConditionExpression:    aws.String("#status = :status"),
			ExpressionAttributeNames:  mergeNames(names, map[string]string{"#status": "status"}),
			ExpressionAttributeValues: values,
			ScanIndexForward:          aws.Bool(false),
		}
		if filterExpr != "" {
			in.FilterExpression = aws.String(filterExpr)
		}
		pages = queryPager{dynamodb.NewQueryPaginator(r.ddb, in)}
	} else {
		in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
		if filterExpr != "" {
			in.FilterExpression = aws.String(filterExpr)
			in.ExpressionAttributeNames = names
			in.ExpressionAttributeValues = values
		}
		pages = scanPager{dynamodb.NewScanPaginator(r.ddb, in)}
	}

	quotes := make([]entities.Quote, 0)
	for pages.HasMorePages() {
		items, err := pages.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range items {
			q, err := unmarshalQuote(raw)
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, q)
		}
		// A query page is already ordered, so it can stop early.
		if filter.Status != "" && filter.Limit > 0 && len(quotes) >= filter.Limit {
			break
		}
	}

	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].CreatedAt.After(quotes[j].CreatedAt) })
	if filter.Limit > 0 && len(quotes) > filter.Limit {
		quotes = quotes[:filter.Limit]
	}
	return quotes, nil
}

type pager interface {
	HasMorePages() bool
	NextPage(ctx context.Context) ([]map[string]types.AttributeValue, error)
}

type queryPager struct{ p *dynamodb.QueryPaginator }

func (q queryPager) HasMorePages() bool { return q.p.HasMorePages() }

func (q queryPager) NextPage(ctx context.Context) ([]map[string]types.AttributeValue, error) {
	out, err := q.p.NextPage(ctx)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

type scanPager struct{ p *dynamodb.ScanPaginator }

func (s scanPager) HasMorePages() bool { return s.p.HasMorePages() }

func (s scanPager) NextPage(ctx context.Context) ([]map[string]types.AttributeValue, error) {
	out, err := s.p.NextPage(ctx)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// createdRangeFilter builds the created_at bounds shared by Query and Scan.
func createdRangeFilter(f interfaces.QuoteFilter) (map[string]string, map[string]types.AttributeValue, string) {
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	var expr string
	if !f.CreatedAfter.IsZero() {
		names["#created_at"] = "created_at"
		values[":after"] = &types.AttributeValueMemberS{Value: formatTime(f.CreatedAfter)}
		expr = "#created_at >= :after"
	}
	if !f.CreatedBefore.IsZero() {
		names["#created_at"] = "created_at"
		values[":before"] = &types.AttributeValueMemberS{Value: formatTime(f.CreatedBefore)}
		if expr != "" {
			expr += " AND "
		}
		expr += "#created_at < :before"
	}
	return names, values, expr
}

// expiryFilter adds the ExpiredAt and ActiveAt bounds. Stored timestamps are
// fixed width, so string comparison orders them correctly.
func expiryFilter(f interfaces.QuoteFilter, names map[string]string, values map[string]types.AttributeValue) string {
	var expr string
	if !f.ExpiredAt.IsZero() {
		names["#status"] = "status"
		names["#expires_at"] = "expires_at"
		open := lifecycle.OpenStatuses()
		placeholders := make([]string, 0, len(open))
		for i, st := range open {
			key := ":open" + strconv.Itoa(i)
			values[key] = &types.AttributeValueMemberS{Value: string(st)}
			placeholders = append(placeholders, key)
		}
		values[":expired_at"] = &types.AttributeValueMemberS{Value: formatTime(f.ExpiredAt)}
		values[":unset"] = &types.AttributeValueMemberS{Value: ""}
		expr = "#status IN (" + strings.Join(placeholders, ", ") + ") AND #expires_at < :expired_at AND #expires_at <> :unset"
	}
	if !f.ActiveAt.IsZero() {
		names["#expires_at"] = "expires_at"
		values[":active_at"] = &types.AttributeValueMemberS{Value: formatTime(f.ActiveAt)}
		expr = andExpr(expr, "#expires_at >= :active_at")
	}
	return expr
}

func andExpr(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " AND " + b
}

func unmarshalQuote(raw map[string]types.AttributeValue) (entities.Quote, error) {
	var it quoteItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}
