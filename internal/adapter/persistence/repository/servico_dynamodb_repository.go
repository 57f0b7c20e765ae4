package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"engetrack/internal/domain/entities"
	"engetrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicosTableName = "servicos"
	servicosStatusIndex      = "status-index"
)

type fichaItem struct {
	ID                string                     `dynamodbav:"id"`
	DataPreenchimento string                     `dynamodbav:"data_preenchimento"`
	Tecnico           string                     `dynamodbav:"tecnico,omitempty"`
	Visita            *entities.FichaVisitaDados `dynamodbav:"visita,omitempty"`
	PGR               *entities.FichaPGRDados    `dynamodbav:"pgr,omitempty"`
	LTCAT             *entities.FichaLTCATDados  `dynamodbav:"ltcat,omitempty"`
}

type servicoItem struct {
	ID       string `dynamodbav:"id"`
	Empresa  string `dynamodbav:"empresa"`
	CNPJ     string `dynamodbav:"cnpj,omitempty"`
	Endereco string `dynamodbav:"endereco,omitempty"`
	Bairro   string `dynamodbav:"bairro,omitempty"`
	Cidade   string `dynamodbav:"cidade,omitempty"`
	Estado   string `dynamodbav:"estado,omitempty"`
	CEP      string `dynamodbav:"cep,omitempty"`
	Contato  string `dynamodbav:"contato,omitempty"`
	Telefone string `dynamodbav:"telefone,omitempty"`

	Status          string `dynamodbav:"status"`
	Tecnico         string `dynamodbav:"tecnico,omitempty"`
	TecnicoID       string `dynamodbav:"tecnico_id,omitempty"`
	DataAgendamento string `dynamodbav:"data_agendamento,omitempty"`

	Responsavel         string `dynamodbav:"responsavel,omitempty"`
	Digitador           string `dynamodbav:"digitador,omitempty"`
	MedicinaResponsavel string `dynamodbav:"medicina_responsavel,omitempty"`

	DataServico    string `dynamodbav:"data_servico"`
	DataVencimento string `dynamodbav:"data_vencimento,omitempty"`

	Anexos []entities.Anexo `dynamodbav:"anexos,omitempty"`

	FichasVisita []fichaItem `dynamodbav:"fichas_visita,omitempty"`
	FichasPGR    []fichaItem `dynamodbav:"fichas_pgr,omitempty"`
	FichasLTCAT  []fichaItem `dynamodbav:"fichas_ltcat,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ServicoDynamoRepository persists Servico entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// Ledger writes never rewrite a whole list: appends go through list_append and
// edits address one element by index, guarded by the element's id. Concurrent
// appends only extend the tail, so earlier indexes stay stable and the two
// operations cannot clobber each other.
type ServicoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServicoRepository = (*ServicoDynamoRepository)(nil)

func NewServicoDynamoRepository(ddb *dynamodb.Client) *ServicoDynamoRepository {
	return &ServicoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICOS_TABLE", defaultServicosTableName),
	}
}

func (r *ServicoDynamoRepository) Create(ctx context.Context, s entities.Servico) (entities.Servico, error) {
	it := toServicoItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Servico{}, err
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
		return entities.Servico{}, err
	}
	return s, nil
}

func (r *ServicoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Servico, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Servico{}, err
	}
	if len(out.Item) == 0 {
		return entities.Servico{}, nil
	}

	var it servicoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Servico{}, err
	}
	return fromServicoItem(it), nil
}

func (r *ServicoDynamoRepository) List(ctx context.Context) ([]entities.Servico, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.Servico, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it servicoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromServicoItem(it))
		}
	}
	return items, nil
}

func (r *ServicoDynamoRepository) ListByStatus(ctx context.Context, status entities.ServicoStatus) ([]entities.Servico, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(servicosStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Servico, 0, len(out.Items))
	for _, raw := range out.Items {
		var it servicoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServicoItem(it))
	}
	return items, nil
}

func (r *ServicoDynamoRepository) UpdateDadosCliente(ctx context.Context, id string, dados entities.DadosCliente) (entities.Servico, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #empresa = :empresa, #cnpj = :cnpj, #endereco = :endereco, #bairro = :bairro, " +
			"#cidade = :cidade, #estado = :estado, #cep = :cep, #contato = :contato, #telefone = :telefone, " +
			"#updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":empresa":    &types.AttributeValueMemberS{Value: dados.Empresa},
			":cnpj":       &types.AttributeValueMemberS{Value: dados.CNPJ},
			":endereco":   &types.AttributeValueMemberS{Value: dados.Endereco},
			":bairro":     &types.AttributeValueMemberS{Value: dados.Bairro},
			":cidade":     &types.AttributeValueMemberS{Value: dados.Cidade},
			":estado":     &types.AttributeValueMemberS{Value: dados.Estado},
			":cep":        &types.AttributeValueMemberS{Value: dados.CEP},
			":contato":    &types.AttributeValueMemberS{Value: dados.Contato},
			":telefone":   &types.AttributeValueMemberS{Value: dados.Telefone},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#empresa":    "empresa",
			"#cnpj":       "cnpj",
			"#endereco":   "endereco",
			"#bairro":     "bairro",
			"#cidade":     "cidade",
			"#estado":     "estado",
			"#cep":        "cep",
			"#contato":    "contato",
			"#telefone":   "telefone",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServicoDynamoRepository) UpdateAgendamento(ctx context.Context, id string, ag entities.Agendamento) (entities.Servico, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		names := map[string]string{
			"#status":           "status",
			"#data_agendamento": "data_agendamento",
			"#tecnico":          "tecnico",
			"#tecnico_id":       "tecnico_id",
			"#updated_at":       "updated_at",
		}
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(ag.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}

		if ag.Data == nil {
			// Clearing the date also clears the technician assignment.
			expr := "SET #status = :status, #updated_at = :updated_at " +
				"REMOVE #data_agendamento, #tecnico, #tecnico_id"
			return expr, vals, names
		}

		vals[":data_agendamento"] = &types.AttributeValueMemberS{Value: ag.Data.UTC().Format(time.RFC3339Nano)}
		if ag.TecnicoID == "" {
			expr := "SET #status = :status, #data_agendamento = :data_agendamento, #updated_at = :updated_at " +
				"REMOVE #tecnico, #tecnico_id"
			return expr, vals, names
		}

		vals[":tecnico"] = &types.AttributeValueMemberS{Value: ag.Tecnico}
		vals[":tecnico_id"] = &types.AttributeValueMemberS{Value: ag.TecnicoID}
		expr := "SET #status = :status, #data_agendamento = :data_agendamento, " +
			"#tecnico = :tecnico, #tecnico_id = :tecnico_id, #updated_at = :updated_at"
		return expr, vals, names
	})
}

func (r *ServicoDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ServicoStatus) (entities.Servico, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServicoDynamoRepository) AppendAnexo(ctx context.Context, id string, anexo entities.Anexo) (entities.Servico, error) {
	av, err := attributevalue.Marshal(anexo)
	if err != nil {
		return entities.Servico{}, err
	}
	return r.appendToList(ctx, id, "anexos", av)
}

func (r *ServicoDynamoRepository) AppendFicha(ctx context.Context, id string, tipo entities.FichaTipo, f entities.Ficha) (entities.Servico, error) {
	av, err := attributevalue.Marshal(toFichaItem(f))
	if err != nil {
		return entities.Servico{}, err
	}
	return r.appendToList(ctx, id, fichaAttribute(tipo), av)
}

// appendToList is the atomic array-append primitive: list_append on the named
// attribute, creating it when absent. Concurrent appends are serialized by
// DynamoDB and never lost.
func (r *ServicoDynamoRepository) appendToList(ctx context.Context, id, attr string, element types.AttributeValue) (entities.Servico, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #list = list_append(if_not_exists(#list, :empty), :element), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#list":       attr,
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":element":    &types.AttributeValueMemberL{Value: []types.AttributeValue{element}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Servico{}, nil
		}
		return entities.Servico{}, err
	}

	var it servicoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Servico{}, err
	}
	return fromServicoItem(it), nil
}

// ReplaceFicha rewrites one ledger element in place, keyed by the ficha id.
// The element index is resolved from a consistent read and the write is
// guarded by a condition on that element's id, so a concurrent append (which
// only extends the tail) cannot be clobbered and a concurrent edit of the
// same record fails the condition instead of silently racing.
func (r *ServicoDynamoRepository) ReplaceFicha(ctx context.Context, id string, tipo entities.FichaTipo, f entities.Ficha) (entities.Servico, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Servico{}, err
	}
	if current.ID == "" {
		return entities.Servico{}, nil
	}

	idx := -1
	for i, cur := range current.Fichas(tipo) {
		if cur.ID == f.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Servico{}, nil
	}

	av, err := attributevalue.Marshal(toFichaItem(f))
	if err != nil {
		return entities.Servico{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String(fmt.Sprintf("#list[%d].#fid = :fid", idx)),
		UpdateExpression:    aws.String(fmt.Sprintf("SET #list[%d] = :ficha, #updated_at = :updated_at", idx)),
		ExpressionAttributeNames: map[string]string{
			"#list":       fichaAttribute(tipo),
			"#fid":        "id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ficha":      av,
			":fid":        &types.AttributeValueMemberS{Value: f.ID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Servico{}, nil
		}
		return entities.Servico{}, err
	}

	var it servicoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Servico{}, err
	}
	return fromServicoItem(it), nil
}

func (r *ServicoDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ServicoDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Servico, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Servico{}, nil
		}
		return entities.Servico{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Servico{}, nil
	}
	var it servicoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Servico{}, err
	}
	return fromServicoItem(it), nil
}

func fichaAttribute(tipo entities.FichaTipo) string {
	switch tipo {
	case entities.FichaTipoPGR:
		return "fichas_pgr"
	case entities.FichaTipoLTCAT:
		return "fichas_ltcat"
	default:
		return "fichas_visita"
	}
}

func toFichaItem(f entities.Ficha) fichaItem {
	return fichaItem{
		ID:                f.ID,
		DataPreenchimento: f.DataPreenchimento.UTC().Format(time.RFC3339Nano),
		Tecnico:           f.Tecnico,
		Visita:            f.Visita,
		PGR:               f.PGR,
		LTCAT:             f.LTCAT,
	}
}

func fromFichaItem(it fichaItem) entities.Ficha {
	dt, _ := time.Parse(time.RFC3339Nano, it.DataPreenchimento)
	return entities.Ficha{
		ID:                it.ID,
		DataPreenchimento: dt,
		Tecnico:           it.Tecnico,
		Visita:            it.Visita,
		PGR:               it.PGR,
		LTCAT:             it.LTCAT,
	}
}

func toFichaItems(fichas []entities.Ficha) []fichaItem {
	if len(fichas) == 0 {
		return nil
	}
	out := make([]fichaItem, 0, len(fichas))
	for _, f := range fichas {
		out = append(out, toFichaItem(f))
	}
	return out
}

func fromFichaItems(items []fichaItem) []entities.Ficha {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.Ficha, 0, len(items))
	for _, it := range items {
		out = append(out, fromFichaItem(it))
	}
	return out
}

func toServicoItem(s entities.Servico) servicoItem {
	it := servicoItem{
		ID:                  s.ID,
		Empresa:             s.Empresa,
		CNPJ:                s.CNPJ,
		Endereco:            s.Endereco,
		Bairro:              s.Bairro,
		Cidade:              s.Cidade,
		Estado:              s.Estado,
		CEP:                 s.CEP,
		Contato:             s.Contato,
		Telefone:            s.Telefone,
		Status:              string(s.Status),
		Tecnico:             s.Tecnico,
		TecnicoID:           s.TecnicoID,
		Responsavel:         s.Responsavel,
		Digitador:           s.Digitador,
		MedicinaResponsavel: s.MedicinaResponsavel,
		DataServico:         s.DataServico.UTC().Format(time.RFC3339Nano),
		Anexos:              s.Anexos,
		FichasVisita:        toFichaItems(s.FichasVisita),
		FichasPGR:           toFichaItems(s.FichasPGR),
		FichasLTCAT:         toFichaItems(s.FichasLTCAT),
		CreatedAt:           s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.DataAgendamento != nil {
		it.DataAgendamento = s.DataAgendamento.UTC().Format(time.RFC3339Nano)
	}
	if s.DataVencimento != nil {
		it.DataVencimento = s.DataVencimento.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromServicoItem(it servicoItem) entities.Servico {
	dataServico, _ := time.Parse(time.RFC3339Nano, it.DataServico)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	s := entities.Servico{
		ID: it.ID,
		DadosCliente: entities.DadosCliente{
			Empresa:  it.Empresa,
			CNPJ:     it.CNPJ,
			Endereco: it.Endereco,
			Bairro:   it.Bairro,
			Cidade:   it.Cidade,
			Estado:   it.Estado,
			CEP:      it.CEP,
			Contato:  it.Contato,
			Telefone: it.Telefone,
		},
		Status:              entities.ServicoStatus(it.Status),
		Tecnico:             it.Tecnico,
		TecnicoID:           it.TecnicoID,
		Responsavel:         it.Responsavel,
		Digitador:           it.Digitador,
		MedicinaResponsavel: it.MedicinaResponsavel,
		DataServico:         dataServico,
		Anexos:              it.Anexos,
		FichasVisita:        fromFichaItems(it.FichasVisita),
		FichasPGR:           fromFichaItems(it.FichasPGR),
		FichasLTCAT:         fromFichaItems(it.FichasLTCAT),
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
	if it.DataAgendamento != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.DataAgendamento); err == nil {
			s.DataAgendamento = &dt
		}
	}
	if it.DataVencimento != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.DataVencimento); err == nil {
			s.DataVencimento = &dt
		}
	}
	return s
}
