package repository

import (
	"context"
	"errors"
	"time"

	"engetrack/internal/domain/entities"
	"engetrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTecnicosTableName = "tecnicos"

type tecnicoItem struct {
	ID        string `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	Email     string `dynamodbav:"email,omitempty"`
	Telefone  string `dynamodbav:"telefone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// TecnicoDynamoRepository persists Tecnico entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TecnicoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITecnicoRepository = (*TecnicoDynamoRepository)(nil)

func NewTecnicoDynamoRepository(ddb *dynamodb.Client) *TecnicoDynamoRepository {
	return &TecnicoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TECNICOS_TABLE", defaultTecnicosTableName),
	}
}

func (r *TecnicoDynamoRepository) Create(ctx context.Context, t entities.Tecnico) (entities.Tecnico, error) {
	av, err := attributevalue.MarshalMap(toTecnicoItem(t))
	if err != nil {
		return entities.Tecnico{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Tecnico{}, err
	}
	return t, nil
}

func (r *TecnicoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tecnico, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Tecnico{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tecnico{}, nil
	}

	var it tecnicoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tecnico{}, err
	}
	return fromTecnicoItem(it), nil
}

func (r *TecnicoDynamoRepository) List(ctx context.Context) ([]entities.Tecnico, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.Tecnico, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it tecnicoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromTecnicoItem(it))
		}
	}
	return items, nil
}

func (r *TecnicoDynamoRepository) Update(ctx context.Context, t entities.Tecnico) (entities.Tecnico, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: t.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #nome = :nome, #email = :email, #telefone = :telefone, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#nome":       "nome",
			"#email":      "email",
			"#telefone":   "telefone",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nome":       &types.AttributeValueMemberS{Value: t.Nome},
			":email":      &types.AttributeValueMemberS{Value: t.Email},
			":telefone":   &types.AttributeValueMemberS{Value: t.Telefone},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Tecnico{}, nil
		}
		return entities.Tecnico{}, err
	}

	var it tecnicoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Tecnico{}, err
	}
	return fromTecnicoItem(it), nil
}

func (r *TecnicoDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toTecnicoItem(t entities.Tecnico) tecnicoItem {
	return tecnicoItem{
		ID:        t.ID,
		Nome:      t.Nome,
		Email:     t.Email,
		Telefone:  t.Telefone,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTecnicoItem(it tecnicoItem) entities.Tecnico {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Tecnico{
		ID:        it.ID,
		Nome:      it.Nome,
		Email:     it.Email,
		Telefone:  it.Telefone,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
