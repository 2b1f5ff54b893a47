package subgraph

const proposalsQuery = `
  query GetProposals {
    proposals(first: 1000, orderBy: block__number, orderDirection: desc) {
      id
      title
      type
      status
      submit_time
      deposit_end_time
      voting_end_time
      voting_start_time
      messages {
        type
      }
    }
  }
`

const proposalQuery = `
  query GetProposal($id: ID!, $first: Int!, $skip: Int!) {
    proposal(id: $id) {
      id
      title
      summary
      type
      status
      submit_time
      deposit_end_time
      voting_end_time
      voting_start_time
      messages {
        type
      }
      deposits {
        amount
        denom
      }
      votes(first: $first, skip: $skip) {
        voter
        option
        block {
          timestamp
        }
      }
    }
  }
`

const governanceParametersQuery = `
  query GetGovernanceParameters {
    governanceParameters(orderBy: block__number, orderDirection: desc) {
      block {
        number
        timestamp
      }
      deposit_params {
        expedited_min_deposit
        max_deposit_period
        min_deposit
      }
      tally_params {
        expedited_threshold
        expedited_quorum
        threshold
        quorum
        veto_threshold
      }
      voting_params {
        expedited_voting_period
        voting_period
      }
    }
  }
`

const voterVotesQuery = `
  query GetVoterVotes($voter: String!, $first: Int!, $skip: Int!) {
    votes(where: { voter: $voter }, first: $first, skip: $skip) {
      option
      weight
      block {
        timestamp
      }
      proposal {
        id
        title
      }
    }
  }
`
