package database

import (
	"context"
	"seguros_xpto/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// NewAWSConfig builds the AWS configuration shared by the DynamoDB and S3
// clients.
//
// Local DynamoDB and MinIO do not validate credentials, but the AWS SDK
// requires them, so static credentials are always set (default "local").
func NewAWSConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
}

// ConnectDynamoDB creates the DynamoDB client. endpoint is optional
// (e.g. http://dynamodb:8000 for DynamoDB local).
func ConnectDynamoDB(awsCfg aws.Config, endpoint string, logger *zap.Logger) *dynamodb.Client {
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	logger.Info("[dynamodb][infra] client ready",
		zap.String("region", awsCfg.Region), zap.String("endpoint", endpoint))
	return client
}
