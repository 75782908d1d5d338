package store

import "errors"

// Falhas recuperáveis do núcleo. Toda operação que retorna um destes erros
// deixa o estado exatamente como estava.
var (
	ErrInvalidState      = errors.New("operação não permitida no estado atual")
	ErrInvalidAmount     = errors.New("valor monetário inválido")
	ErrNoActiveSession   = errors.New("nenhum caixa aberto")
	ErrEmptyCart         = errors.New("carrinho vazio")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrDuplicateUsername = errors.New("nome de usuário já existe")
	ErrDuplicateCode     = errors.New("código de produto já existe")
	ErrNotFound          = errors.New("registro não encontrado")
)
