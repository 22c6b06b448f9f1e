// Package i18n holds the static UI string tables for the languages the
// product ships in (English, French, Portuguese).
package i18n

// Strings is the full set of UI strings for one language.
type Strings struct {
	Common    Common
	Auth      Auth
	Pickup    Pickup
	Rewards   Rewards
	History   History
	Assistant Assistant
	SmartBin  SmartBin
	MapView   MapView
}

type Common struct {
	Back        string
	Cancel      string
	Confirm     string
	Loading     string
	OfflineMode string
}

type Auth struct {
	WelcomeTitle   string
	SelectType     string
	RoleUser       string
	RoleUserDesc   string
	RoleCollector  string
	RoleCollDesc   string
	Name           string
	Email          string
	Password       string
	ConfirmPass    string
	SignIn         string
	SignUp         string
	PassMismatch   string
	AccountCreated string
}

type Pickup struct {
	Title     string
	Subtitle  string
	Date      string
	Time      string
	Location  string
	Notes     string
	Success   string
	AlertItem string
	Items     map[string]string
}

type Rewards struct {
	AvailableBalance string
	ExchangeRate     string
	BuyingPower      string
	Airtime          string
	MobileMoney      string
	GiftCard         string
	Amount           string
	Provider         string
	Phone            string
	Cost             string
	Insufficient     string
	SuccessTitle     string
	SuccessDesc      string
}

type History struct {
	Header string
	Empty  string
}

type Assistant struct {
	Title      string
	InitialMsg string
	Thinking   string
	Fallback   string
}

type SmartBin struct {
	Title      string
	ConnectBin string
	FillLevel  string
	Battery    string
	NeedsEmpty string
	Disconnect string
}

type MapView struct {
	Title       string
	YouAreHere  string
	Markets     string
	Bins        string
	Collections string
}

// Codes lists the supported language codes.
func Codes() []string {
	return []string{"en", "fr", "pt"}
}

// T returns the string table for a language code, defaulting to English.
func T(lang string) Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables["en"]
}

var tables = map[string]Strings{
	"en": {
		Common: Common{
			Back:        "Back",
			Cancel:      "Cancel",
			Confirm:     "Confirm",
			Loading:     "Loading...",
			OfflineMode: "Offline Mode: Backend unreachable. Using mock data.",
		},
		Auth: Auth{
			WelcomeTitle:   "Welcome to Recolhe+",
			SelectType:     "Select your account type to continue",
			RoleUser:       "Household",
			RoleUserDesc:   "Schedule pickups and earn EcoCoins for recycling",
			RoleCollector:  "Collector",
			RoleCollDesc:   "Find collection routes and manage smart bins",
			Name:           "Full name",
			Email:          "Email address",
			Password:       "Password",
			ConfirmPass:    "Confirm password",
			SignIn:         "Sign In",
			SignUp:         "Create Account",
			PassMismatch:   "Passwords do not match",
			AccountCreated: "Account created successfully",
		},
		Pickup: Pickup{
			Title:     "Schedule a Pickup",
			Subtitle:  "Tell us what you are recycling",
			Date:      "Date",
			Time:      "Time",
			Location:  "Pickup location",
			Notes:     "Notes for the collector",
			Success:   "Pickup scheduled successfully!",
			AlertItem: "Please add at least one item",
			Items: map[string]string{
				"plastic": "Plastic", "glass": "Glass", "paper": "Paper",
				"metal": "Metal", "organic": "Organic", "e-waste": "E-waste",
			},
		},
		Rewards: Rewards{
			AvailableBalance: "Available Balance",
			ExchangeRate:     "Exchange rate",
			BuyingPower:      "Buying power",
			Airtime:          "Airtime",
			MobileMoney:      "Mobile Money",
			GiftCard:         "Market Voucher",
			Amount:           "Amount",
			Provider:         "Provider",
			Phone:            "Phone number",
			Cost:             "Cost in EcoCoins",
			Insufficient:     "Insufficient EcoCoin balance",
			SuccessTitle:     "Redemption successful!",
			SuccessDesc:      "{n} EcoCoins were deducted from your balance",
		},
		History: History{
			Header: "Transaction History",
			Empty:  "No transactions yet",
		},
		Assistant: Assistant{
			Title:      "Recolhe+ Assistant",
			InitialMsg: "Hello! I am the Recolhe+ Assistant. Ask me anything about recycling, pickups or your EcoCoins.",
			Thinking:   "Thinking...",
			Fallback:   "I'm having trouble connecting to the recycling knowledge base right now. Please try again later.",
		},
		SmartBin: SmartBin{
			Title:      "Smart Bin Monitor",
			ConnectBin: "Connect to your bin",
			FillLevel:  "Fill level",
			Battery:    "Battery",
			NeedsEmpty: "Bin is almost full — a pickup is recommended",
			Disconnect: "Disconnect",
		},
		MapView: MapView{
			Title:       "Recycling Map",
			YouAreHere:  "You are here",
			Markets:     "Partner markets",
			Bins:        "Smart bins",
			Collections: "Scheduled collections",
		},
	},
	"fr": {
		Common: Common{
			Back:        "Retour",
			Cancel:      "Annuler",
			Confirm:     "Confirmer",
			Loading:     "Chargement...",
			OfflineMode: "Mode hors ligne : serveur injoignable. Données de démonstration.",
		},
		Auth: Auth{
			WelcomeTitle:   "Bienvenue sur Recolhe+",
			SelectType:     "Choisissez votre type de compte pour continuer",
			RoleUser:       "Ménage",
			RoleUserDesc:   "Planifiez des collectes et gagnez des EcoCoins en recyclant",
			RoleCollector:  "Collecteur",
			RoleCollDesc:   "Trouvez des tournées et gérez les bacs intelligents",
			Name:           "Nom complet",
			Email:          "Adresse e-mail",
			Password:       "Mot de passe",
			ConfirmPass:    "Confirmer le mot de passe",
			SignIn:         "Se connecter",
			SignUp:         "Créer un compte",
			PassMismatch:   "Les mots de passe ne correspondent pas",
			AccountCreated: "Compte créé avec succès",
		},
		Pickup: Pickup{
			Title:     "Planifier une collecte",
			Subtitle:  "Dites-nous ce que vous recyclez",
			Date:      "Date",
			Time:      "Heure",
			Location:  "Lieu de collecte",
			Notes:     "Notes pour le collecteur",
			Success:   "Collecte planifiée avec succès !",
			AlertItem: "Veuillez ajouter au moins un article",
			Items: map[string]string{
				"plastic": "Plastique", "glass": "Verre", "paper": "Papier",
				"metal": "Métal", "organic": "Organique", "e-waste": "Déchets électroniques",
			},
		},
		Rewards: Rewards{
			AvailableBalance: "Solde disponible",
			ExchangeRate:     "Taux de change",
			BuyingPower:      "Pouvoir d'achat",
			Airtime:          "Crédit téléphonique",
			MobileMoney:      "Mobile Money",
			GiftCard:         "Bon d'achat",
			Amount:           "Montant",
			Provider:         "Opérateur",
			Phone:            "Numéro de téléphone",
			Cost:             "Coût en EcoCoins",
			Insufficient:     "Solde EcoCoin insuffisant",
			SuccessTitle:     "Échange réussi !",
			SuccessDesc:      "{n} EcoCoins ont été déduits de votre solde",
		},
		History: History{
			Header: "Historique des transactions",
			Empty:  "Aucune transaction pour le moment",
		},
		Assistant: Assistant{
			Title:      "Assistant Recolhe+",
			InitialMsg: "Bonjour ! Je suis l'assistant Recolhe+. Posez-moi vos questions sur le recyclage, les collectes ou vos EcoCoins.",
			Thinking:   "Réflexion...",
			Fallback:   "J'ai du mal à joindre la base de connaissances sur le recyclage. Veuillez réessayer plus tard.",
		},
		SmartBin: SmartBin{
			Title:      "Surveillance du bac intelligent",
			ConnectBin: "Connectez votre bac",
			FillLevel:  "Niveau de remplissage",
			Battery:    "Batterie",
			NeedsEmpty: "Le bac est presque plein — une collecte est recommandée",
			Disconnect: "Déconnecter",
		},
		MapView: MapView{
			Title:       "Carte du recyclage",
			YouAreHere:  "Vous êtes ici",
			Markets:     "Marchés partenaires",
			Bins:        "Bacs intelligents",
			Collections: "Collectes planifiées",
		},
	},
	"pt": {
		Common: Common{
			Back:        "Voltar",
			Cancel:      "Cancelar",
			Confirm:     "Confirmar",
			Loading:     "A carregar...",
			OfflineMode: "Modo offline: servidor inacessível. A usar dados de demonstração.",
		},
		Auth: Auth{
			WelcomeTitle:   "Bem-vindo ao Recolhe+",
			SelectType:     "Escolha o tipo de conta para continuar",
			RoleUser:       "Agregado familiar",
			RoleUserDesc:   "Agende recolhas e ganhe EcoCoins por reciclar",
			RoleCollector:  "Coletor",
			RoleCollDesc:   "Encontre rotas de recolha e gira contentores inteligentes",
			Name:           "Nome completo",
			Email:          "Endereço de e-mail",
			Password:       "Palavra-passe",
			ConfirmPass:    "Confirmar palavra-passe",
			SignIn:         "Entrar",
			SignUp:         "Criar conta",
			PassMismatch:   "As palavras-passe não coincidem",
			AccountCreated: "Conta criada com sucesso",
		},
		Pickup: Pickup{
			Title:     "Agendar uma recolha",
			Subtitle:  "Diga-nos o que está a reciclar",
			Date:      "Data",
			Time:      "Hora",
			Location:  "Local de recolha",
			Notes:     "Notas para o coletor",
			Success:   "Recolha agendada com sucesso!",
			AlertItem: "Adicione pelo menos um artigo",
			Items: map[string]string{
				"plastic": "Plástico", "glass": "Vidro", "paper": "Papel",
				"metal": "Metal", "organic": "Orgânico", "e-waste": "Lixo eletrónico",
			},
		},
		Rewards: Rewards{
			AvailableBalance: "Saldo disponível",
			ExchangeRate:     "Taxa de câmbio",
			BuyingPower:      "Poder de compra",
			Airtime:          "Saldo telefónico",
			MobileMoney:      "Mobile Money",
			GiftCard:         "Vale de mercado",
			Amount:           "Montante",
			Provider:         "Operadora",
			Phone:            "Número de telefone",
			Cost:             "Custo em EcoCoins",
			Insufficient:     "Saldo EcoCoin insuficiente",
			SuccessTitle:     "Resgate concluído!",
			SuccessDesc:      "{n} EcoCoins foram deduzidos do seu saldo",
		},
		History: History{
			Header: "Histórico de transações",
			Empty:  "Ainda não há transações",
		},
		Assistant: Assistant{
			Title:      "Assistente Recolhe+",
			InitialMsg: "Olá! Sou o assistente Recolhe+. Pergunte-me sobre reciclagem, recolhas ou os seus EcoCoins.",
			Thinking:   "A pensar...",
			Fallback:   "Estou com dificuldade em ligar à base de conhecimento de reciclagem. Tente novamente mais tarde.",
		},
		SmartBin: SmartBin{
			Title:      "Monitor do contentor inteligente",
			ConnectBin: "Ligue o seu contentor",
			FillLevel:  "Nível de enchimento",
			Battery:    "Bateria",
			NeedsEmpty: "O contentor está quase cheio — recomenda-se uma recolha",
			Disconnect: "Desligar",
		},
		MapView: MapView{
			Title:       "Mapa de reciclagem",
			YouAreHere:  "Está aqui",
			Markets:     "Mercados parceiros",
			Bins:        "Contentores inteligentes",
			Collections: "Recolhas agendadas",
		},
	},
}
