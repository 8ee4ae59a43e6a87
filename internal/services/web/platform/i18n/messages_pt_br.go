package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBRMessages = map[string]string{
	"app.name":             "LeaseDesk",
	"app.meta_description": "Encontre um imóvel, acompanhe seu contrato e administre propriedades para aluguel.",

	"nav.home":         "Início",
	"nav.available":    "Imóveis disponíveis",
	"nav.owner":        "Proprietários",
	"nav.manager":      "Administradores",
	"nav.tenant":       "Inquilinos",
	"nav.about":        "Sobre nós",
	"nav.login":        "Entrar",
	"nav.register":     "Criar conta",
	"nav.signed_in_as": "Conectado como %s",
	"nav.logout":       "Sair",

	"role.owner":   "Proprietário",
	"role.manager": "Administrador",
	"role.tenant":  "Inquilino",

	"title.home":      "Início",
	"title.login":     "Entrar",
	"title.register":  "Criar conta",
	"title.available": "Imóveis disponíveis",
	"title.owner":     "Painel do proprietário",
	"title.manager":   "Painel do administrador",
	"title.tenant":    "Meu contrato",
	"title.about":     "Sobre nós",

	"auth.error.invalid_credentials": "Usuário ou senha incorretos.",
	"auth.error.username_invalid":    "O usuário deve ter de 3 a 64 caracteres, sem espaços.",
	"auth.error.password_too_short":  "A senha precisa de pelo menos 8 caracteres.",
	"auth.error.password_too_long":   "A senha pode ter no máximo 72 bytes.",
	"auth.error.password_mismatch":   "As senhas não coincidem.",
	"auth.error.role_invalid":        "Escolha proprietário, administrador ou inquilino.",
	"auth.error.username_taken":      "Esse usuário já está em uso.",

	"home.heading":        "Aluguel sem complicação",
	"home.tagline":        "Encontre imóveis disponíveis, assine contratos e acompanhe o aluguel em um só lugar.",
	"home.welcome_back":   "Bem-vindo de volta, %s.",
	"home.open_dashboard": "Abrir meu painel",
	"home.browse":         "Ver imóveis",
	"home.register":       "Criar uma conta",

	"about.heading":  "Sobre o LeaseDesk",
	"about.body":     "O LeaseDesk conecta as pessoas por trás de cada aluguel.",
	"about.owners":   "Proprietários cadastram imóveis e acompanham a renda dos aluguéis.",
	"about.managers": "Administradores fecham contratos e mantêm tudo em dia.",
	"about.tenants":  "Inquilinos encontram imóveis e consultam seu contrato.",

	"error.not_found.title": "Página não encontrada",
	"error.not_found.body":  "Não encontramos o que você procurava.",
	"error.forbidden.title": "Acesso negado",
	"error.forbidden.body":  "Sua conta não pode fazer isso.",
	"error.server.title":    "Algo deu errado",
	"error.server.body":     "Tivemos um problema ao carregar esta página. Tente novamente em instantes.",
	"error.back_home":       "Voltar ao início",
	"form.error.generic":    "Não foi possível salvar. Tente novamente.",

	"login.heading":    "Entrar",
	"login.registered": "Sua conta está pronta. Entre para continuar.",
	"login.username":   "Usuário",
	"login.password":   "Senha",
	"login.submit":     "Entrar",
	"login.no_account": "Primeira vez aqui?",

	"register.heading":  "Crie sua conta",
	"register.username": "Usuário",
	"register.password": "Senha",
	"register.confirm":  "Confirme a senha",
	"register.role":     "Eu sou",
	"register.submit":   "Criar conta",

	"property.back":                   "Voltar aos imóveis disponíveis",
	"property.bedrooms":               "%d quartos",
	"property.bathrooms":              "%d banheiros",
	"property.rent":                   "%s por mês",
	"property.available":              "Disponível",
	"property.leased":                 "Alugado",
	"property.field.name":             "Nome",
	"property.field.address":          "Endereço",
	"property.field.city":             "Cidade",
	"property.field.state":            "Estado",
	"property.field.zip":              "CEP",
	"property.field.bedrooms":         "Quartos",
	"property.field.bathrooms":        "Banheiros",
	"property.field.rent":             "Aluguel mensal",
	"property.field.description":      "Descrição",
	"property.error.name_required":    "Dê um nome ao imóvel.",
	"property.error.address_required": "Informe o endereço.",
	"property.error.invalid_rooms":    "Quartos e banheiros devem ser números inteiros a partir de zero.",
	"property.error.invalid_rent":     "Informe o aluguel como 1250 ou 1250.50.",

	"available.heading":       "Imóveis disponíveis",
	"available.search_label":  "Buscar por nome, endereço ou cidade",
	"available.search_submit": "Buscar",
	"available.no_match":      "Nenhum imóvel disponível corresponde a %q.",
	"available.empty":         "Nenhum imóvel disponível no momento.",

	"owner.heading":        "Seus imóveis",
	"owner.rent_total":     "Aluguel mensal de contratos ativos",
	"owner.property_count": "Imóveis",
	"owner.properties":     "Imóveis cadastrados",
	"owner.empty":          "Você ainda não cadastrou imóveis.",
	"owner.add_property":   "Cadastrar imóvel",
	"owner.submit":         "Adicionar imóvel",

	"manager.heading":       "Contratos",
	"manager.empty":         "Ainda não há contratos.",
	"manager.new_lease":     "Novo contrato",
	"manager.submit":        "Criar contrato",
	"manager.update_status": "Atualizar",

	"lease.field.tenant":   "Usuário do inquilino",
	"lease.field.property": "Imóvel",
	"lease.field.start":    "Data de início",
	"lease.field.term":     "Prazo (meses)",
	"lease.field.rent":     "Aluguel mensal",
	"lease.col.tenant":     "Inquilino",
	"lease.col.property":   "Imóvel",
	"lease.col.start":      "Início",
	"lease.col.end":        "Fim",
	"lease.col.rent":       "Aluguel",
	"lease.col.status":     "Situação",
	"lease.col.update":     "Alterar situação",

	"lease.status.pending":  "Pendente",
	"lease.status.active":   "Ativo",
	"lease.status.ended":    "Encerrado",
	"lease.status.rejected": "Recusado",

	"lease.error.tenant_not_found":   "Nenhum inquilino com esse usuário.",
	"lease.error.property_required":  "Escolha um imóvel.",
	"lease.error.property_not_found": "Esse imóvel não existe mais.",
	"lease.error.invalid_start":      "Informe a data de início como AAAA-MM-DD.",
	"lease.error.invalid_term":       "O prazo deve ser de 1 a 120 meses.",
	"lease.error.invalid_rent":       "Informe o aluguel como 1250 ou 1250.50.",
	"lease.error.invalid_status":     "Situação de contrato não reconhecida.",

	"tenant.heading":  "Meu contrato",
	"tenant.no_lease": "Você ainda não tem um contrato registrado.",

	"prompt.heading":    "É preciso entrar",
	"prompt.sign_in":    "Entre como %s para ver esta página.",
	"prompt.wrong_role": "Esta página é apenas para o perfil %s.",

	"notice.property_created":     "Imóvel cadastrado.",
	"notice.lease_created":        "Contrato criado.",
	"notice.lease_status_updated": "Situação do contrato atualizada.",
	"notice.signed_out":           "Você saiu da sua conta.",
	"notice.signed_in":            "Bem-vindo de volta.",
}

func init() {
	for key, value := range ptBRMessages {
		_ = message.SetString(language.BrazilianPortuguese, key, value)
	}
}
