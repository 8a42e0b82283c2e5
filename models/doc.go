// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON. Each carries `validate` tags checked by
middleware.ParseJSONBody:

  - RegisterVoterRequest: address (required hex address)
  - AddCandidateRequest: name (required, max 200), description (max 2000)
  - StartVotingRequest: duration_minutes (required)
  - CastVoteRequest: candidate_index (required, may be 0)

# Response Types

Types for JSON responses:

  - RegisterVoterResponse: address, caller_key
  - AddCandidateResponse: index
  - CastVoteResponse: candidate_index, message
  - StatusResponse: is_open, time_remaining (seconds), time_remaining_human,
    start_time, end_time (also returned by voting start/end)
  - ResultsResponse: results, total_votes, registered_voters, turnout, leaders
  - ErrorResponse: error, message, code

# Domain Types

JSON views of the election state:

  - Candidate: index, name, description, vote_count
  - Voter: address, is_registered, has_voted, voted_for

Addresses are always rendered in their checksummed hex form.
*/
package models
