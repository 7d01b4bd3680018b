// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package otel

const (
	Prefix                    = "vedtak-"
	AttributeDecisionKey      = Prefix + "decision-key"
	AttributeCaseProcessingID = Prefix + "case-processing-id"
	AttributeCaseID           = Prefix + "case-id"
	AttributeDecisionType     = Prefix + "type"
	AttributeStatusFrom       = Prefix + "status-from"
	AttributeStatusTo         = Prefix + "status-to"
	AttributeOperation        = Prefix + "operation"
	AttributeCollaborator     = Prefix + "collaborator"
)
