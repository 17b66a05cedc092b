package database

import (
	"context"
	"fmt"

	appconfig "instant_offer/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client for the quotes table.
func ConnectDynamoDB(ctx context.Context, opts appconfig.AWSOptions) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

// NewDynamoDBConfig builds the AWS config. When an endpoint is set the client
// talks to it directly, which is how DynamoDB Local is used in development.
func NewDynamoDBConfig(ctx context.Context, opts appconfig.AWSOptions) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint := opts.DynamoDBEndpoint; endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
