package model

// SampleContracts returns the built-in fallback collection used when the
// reporting endpoint is unreachable or returns a malformed payload. It covers
// both vigency statuses and all three urgency bands so the UI stays usable
// offline.
func SampleContracts() []Contract {
	return []Contract{
		{
			ID:                    "1",
			NumContrato:           "CONT-2023-001",
			DscResumo:             "Serviço de manutenção predial",
			NomCredor:             "Empresa XYZ Ltda",
			NumCnpjCpf:            "12.345.678/0001-90",
			DatInicio:             "2023-01-15",
			DatFim:                "2025-01-14",
			ValGlobal:             250000,
			DiasRestantes:         120,
			StatusVigencia:        StatusVigente,
			Observacoes:           "Contrato renovável",
			DscObjetoContrato:     "Manutenção dos sistemas elétricos e hidráulicos",
			ContatoGestor:         "João Silva - (41) 99999-1234",
			DatPublicacao:         "2023-01-10",
			DscTipoDocumentoLegal: "Contrato",
			CodUnidadeGestora:     "450001",
			Class1Setor:           "Administração",
			Class2Tipo:            "Serviços",
			Classif1:              "Custeio",
			Classif2:              "Manutenção",
			NmSubacao:             "Gestão Administrativa",
			NmPrograma:            "Gestão Pública",
		},
		{
			ID:                    "2",
			NumContrato:           "CONT-2023-002",
			DscResumo:             "Fornecimento de material de escritório",
			NomCredor:             "Papelaria ABC",
			NumCnpjCpf:            "23.456.789/0001-12",
			DatInicio:             "2023-02-01",
			DatFim:                "2024-01-31",
			ValGlobal:             50000,
			DiasRestantes:         20,
			StatusVigencia:        StatusVigente,
			Observacoes:           "Entrega mensal",
			DscObjetoContrato:     "Material de escritório diversos",
			ContatoGestor:         "Maria Santos - (41) 99999-5678",
			DatPublicacao:         "2023-01-25",
			DscTipoDocumentoLegal: "Contrato",
			CodUnidadeGestora:     "450001",
			Classif1:              "Custeio",
			Classif2:              "Suprimentos",
			NmSubacao:             "Gestão Administrativa",
			NmPrograma:            "Gestão Pública",
		},
		{
			ID:                    "3",
			NumContrato:           "CONT-2022-015",
			DscResumo:             "Licenças de software",
			NomCredor:             "Tech Solutions S.A.",
			NumCnpjCpf:            "34.567.890/0001-23",
			DatInicio:             "2022-08-15",
			DatFim:                "2023-08-14",
			ValGlobal:             180000,
			DiasRestantes:         0,
			StatusVigencia:        StatusEncerrado,
			Observacoes:           "Renovação pendente de aprovação",
			DscObjetoContrato:     "Licenças de uso de software ERP",
			ContatoGestor:         "Carlos Oliveira - (41) 99999-9012",
			DatPublicacao:         "2022-08-10",
			DscTipoDocumentoLegal: "Termo Aditivo",
			CodUnidadeGestora:     "450002",
			Class1Setor:           "Tecnologia",
			Class2Tipo:            "Licenciamento",
			Classif1:              "Investimento",
			Classif2:              "Software",
			NmSubacao:             "Modernização Tecnológica",
			NmPrograma:            "Transformação Digital",
		},
		{
			ID:                    "4",
			NumContrato:           "CONT-2023-007",
			DscResumo:             "Vigilância patrimonial armada",
			NomCredor:             "Segurança Total Ltda",
			NumCnpjCpf:            "45.678.901/0001-34",
			DatInicio:             "2023-03-01",
			DatFim:                "2024-02-29",
			ValGlobal:             320000,
			DiasRestantes:         60,
			StatusVigencia:        StatusVigente,
			DscObjetoContrato:     "Vigilância das unidades administrativas",
			ContatoGestor:         "Ana Pereira - (41) 99999-3456",
			DatPublicacao:         "2023-02-20",
			DscTipoDocumentoLegal: "Contrato",
			CodUnidadeGestora:     "450002",
			Class1Setor:           "Administração",
			Class2Tipo:            "Serviços",
			Classif1:              "Custeio",
			Classif2:              "Segurança",
			NmSubacao:             "Segurança Institucional",
			NmPrograma:            "Gestão Pública",
		},
		{
			ID:                    "5",
			NumContrato:           "CONT-2021-042",
			DscResumo:             "Reforma do auditório central",
			NomCredor:             "Construtora Delta Eireli",
			NumCnpjCpf:            "56.789.012/0001-45",
			DatInicio:             "2021-06-01",
			DatFim:                "2022-05-31",
			ValGlobal:             890000,
			DiasRestantes:         0,
			StatusVigencia:        StatusEncerrado,
			DscObjetoContrato:     "Reforma completa do auditório e acessos",
			ContatoGestor:         "Pedro Costa - (41) 99999-7890",
			DatPublicacao:         "2021-05-15",
			DscTipoDocumentoLegal: "Termo Aditivo",
			CodUnidadeGestora:     "450001",
			Class1Setor:           "Engenharia",
			Class2Tipo:            "Obras",
			Classif1:              "Investimento",
			Classif2:              "Infraestrutura",
			NmSubacao:             "Infraestrutura Física",
			NmPrograma:            "Modernização Predial",
		},
	}
}
